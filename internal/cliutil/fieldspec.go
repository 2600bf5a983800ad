package cliutil

import (
	"fmt"
	"strings"

	"github.com/ministore/fieldstore/schema"
)

// ParseFieldSpecs builds a schema from specs of the form
// name:type[:flag,flag...].
//
// text flags: text, string, stored, nofreq, freq
// u32 flags:  indexed, fast, stored
func ParseFieldSpecs(specs []string) (*schema.Schema, error) {
	sch := schema.NewSchema()
	for _, spec := range specs {
		if err := addFieldSpec(sch, spec); err != nil {
			return nil, err
		}
	}
	return sch, nil
}

func addFieldSpec(sch *schema.Schema, spec string) error {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) < 2 {
		return fmt.Errorf("field %q: want name:type[:flags]", spec)
	}
	name, typ := parts[0], strings.ToLower(parts[1])
	var flags []string
	if len(parts) == 3 && parts[2] != "" {
		flags = strings.Split(strings.ToLower(parts[2]), ",")
	}

	switch typ {
	case "text":
		opts := schema.NewTextOptions()
		for _, f := range flags {
			switch f {
			case "text":
				opts = opts.Or(schema.TEXT)
			case "string":
				opts = opts.Or(schema.STRING)
			case "stored":
				opts = opts.Or(schema.STORED)
			case "nofreq":
				opts = opts.SetIndexingOptions(opts.IndexingOptions().Or(schema.TokenizedNoFreq))
			case "freq":
				opts = opts.SetIndexingOptions(opts.IndexingOptions().Or(schema.TokenizedWithFreq))
			default:
				return fmt.Errorf("field %q: unknown text flag %q", name, f)
			}
		}
		_, err := sch.AddTextField(name, opts)
		return err
	case "u32":
		opts := schema.NewU32Options()
		for _, f := range flags {
			switch f {
			case "indexed":
				opts = opts.SetIndexed()
			case "fast":
				opts = opts.SetFast()
			case "stored":
				opts = opts.SetStored()
			default:
				return fmt.Errorf("field %q: unknown u32 flag %q", name, f)
			}
		}
		_, err := sch.AddU32Field(name, opts)
		return err
	default:
		return fmt.Errorf("field %q: unknown type %q", name, typ)
	}
}
