package id3tag

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// OpenMany opens the tags of multiple files concurrently.
//
// Files are read in parallel using up to runtime.NumCPU() goroutines, each
// with its own engine. Results are returned in the same order as the input
// paths. If any file fails to open, an error is returned and no tags.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	tags, err := id3tag.OpenMany(ctx, id3tag.VAll, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, t := range tags {
//		fmt.Printf("%s: %s - %s\n", t.Path(), t.Artist(), t.Title())
//	}
func OpenMany(ctx context.Context, scope Scope, paths ...string) ([]*Tag, error) {
	return OpenManyWith(ctx, scope, paths, nil)
}

// OpenManyWith is OpenMany with options applied to every file.
func OpenManyWith(ctx context.Context, scope Scope, paths []string, opts []Option) ([]*Tag, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Tag, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			t, err := Open(path, scope, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = t
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
