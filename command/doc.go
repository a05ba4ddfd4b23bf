/*
Package command classifies textual calendar commands.

A line is split on whitespace and matched against a fixed bank of templates.
Each template position is a literal, a wildcard or a typed placeholder:

	<s>, <v>  any token (subject, value)
	<d>       date, YYYY-MM-DD
	<dt>      date-time, YYYY-MM-DDTHH:MM
	<w>       one weekday code of M T W R F S U
	<n>       positive integer
	<p>       event property name
	<cn>      calendar name
	<al>      area name, such as a time zone
	<pn>      calendar property name

Only templates with as many slots as the line has tokens are tried. A
template whose slots all accept may still be rejected by its secondary
validator, for instance when the start of an event is not before its end.

# Usage

	cmd := command.Parse("create event gym on 2025-06-06 repeats F for 6 times")
	if !cmd.Recognized() {
		// report the line
	}
	subject, date := cmd.Field(0), cmd.Field(1)

Parse never fails: an unmatched line yields TypeUnrecognized.
*/
package command
