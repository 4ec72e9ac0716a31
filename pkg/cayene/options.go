package cayene

import (
	"github.com/PabloGonzalezSegarra/cayene-decoder/internal/typeconf"
)

// Options configures decoder construction.
type Options struct {
	// TypesFile points to a YAML file with extension data type
	// definitions registered on top of the standard set.
	TypesFile string
}

func (opts Options) apply(d *Decoder) error {
	if opts.TypesFile == "" {
		return nil
	}
	defs, err := typeconf.Load(opts.TypesFile)
	if err != nil {
		return err
	}
	for _, def := range defs {
		d.registry.Register(def.ID, def.Name, def.Width, definitionDecodeFunc(def))
	}
	return nil
}

func definitionDecodeFunc(def typeconf.Definition) DecodeFunc {
	scale := def.Scale
	if def.Kind == typeconf.KindSigned {
		return func(data []byte) Value {
			return Decimal(float64(signedBE(data)) / scale)
		}
	}
	if scale == 1 {
		return unsignedBE
	}
	return func(data []byte) Value {
		v := unsignedBE(data).(Unsigned)
		return Decimal(float64(v) / scale)
	}
}
