package main

import (
	"context"
	"fmt"

	"github.com/dhamidi/cpool/classfile"
	"github.com/dhamidi/cpool/source"
	"golang.org/x/sync/errgroup"
)

type decoded struct {
	name  string
	class *classfile.Class
	err   error
}

// decodeAll loads every path and decodes the resulting inputs with at most
// jobs running at once. Results keep input order. Errors while loading a path
// abort; decoding errors are reported per input.
func decodeAll(ctx context.Context, paths []string, jobs int) ([]decoded, error) {
	var inputs []source.Input
	for _, path := range paths {
		in, err := source.Load(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		inputs = append(inputs, in...)
	}

	results := make([]decoded, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			class, err := classfile.Parse(in.Data)
			results[i] = decoded{name: in.Name, class: class, err: err}
			if err != nil {
				log.Debugf("%s: %s", in.Name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
