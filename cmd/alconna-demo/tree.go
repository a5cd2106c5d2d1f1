package main

import (
	"github.com/arclet-go/alconna/args"
	"github.com/arclet-go/alconna/command"
	"github.com/arclet-go/alconna/pattern"
)

// sampleTree builds the tree every subcommand exercises: a "greet" command
// taking a name and an optional int age, with a --loud flag and a "schedule"
// sub-command taking a time-of-day.
func sampleTree() *command.Root {
	nameArg := args.MustNew(
		args.SlotSpec{Name: "name", Pattern: pattern.MustRegex(`\w+`, pattern.RAW, "str", nil)},
		args.SlotSpec{
			Name:    "age",
			Pattern: pattern.MustRegex(`\d+`, pattern.REGEX_TRANSFORM, "int", parseInt),
			Default: pattern.None{},
		},
	)

	loud := command.MustNewOption("--loud", []string{"-l"}, args.SlotList{})
	help := command.MustNewOption("--help", []string{"-h"}, args.SlotList{})

	scheduleArgs := args.MustNew(
		args.SlotSpec{Name: "when", Pattern: pattern.MustRegex(`\S+`, pattern.RAW, "str", nil)},
	)
	schedule := command.MustNewSubcommand("schedule", scheduleArgs, nil)

	header := command.NewHeader(command.Head("greet")).WithPrefixes("!", "/")
	return command.MustNewRoot("greet", header, nameArg, loud, help, schedule)
}

func parseInt(s string) (any, error) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, errInvalidInt(s)
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}

type errInvalidInt string

func (e errInvalidInt) Error() string { return "not an integer: " + string(e) }
