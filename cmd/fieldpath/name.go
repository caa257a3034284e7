package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ogix/fieldpath"
)

const (
	nameCmdUse       = "name <path>"
	nameCmdShort     = "Print the name, id and label of a path"
	nameArgCount     = 1
	namePrefixFlag   = "prefix"
	namePrefixUsage  = "enclosing path the field is nested in"
	nameOwnerFlag    = "owner"
	nameOwnerUsage   = "model or form namespace owning the members"
	nameCatalogFlag  = "catalog"
	nameCatalogUsage = "YAML label catalog"
)

// ErrEmptyPath is returned when the path argument has no segments.
var ErrEmptyPath = errors.New("path must name at least one member")

type nameOptions struct {
	prefix  string
	owner   string
	catalog string
}

func newNameCommand() *cobra.Command {
	var opts nameOptions

	cmd := &cobra.Command{
		Use:   nameCmdUse,
		Short: nameCmdShort,
		Args:  cobra.ExactArgs(nameArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runName(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.prefix, namePrefixFlag, "", namePrefixUsage)
	cmd.Flags().StringVar(&opts.owner, nameOwnerFlag, "", nameOwnerUsage)
	cmd.Flags().StringVar(&opts.catalog, nameCatalogFlag, "", nameCatalogUsage)

	return cmd
}

func runName(out io.Writer, path string, opts nameOptions) error {
	resolverOpts := []fieldpath.Option{fieldpath.WithLogger(slog.Default())}
	if opts.catalog != "" {
		catalog, err := loadCatalog(opts.catalog)
		if err != nil {
			return err
		}
		resolverOpts = append(resolverOpts, fieldpath.WithCatalog(catalog))
	}
	r := fieldpath.NewResolver(resolverOpts...)

	prefixSegs, err := r.ResolvePath(opts.owner, opts.prefix)
	if err != nil {
		return fmt.Errorf("prefix: %w", err)
	}
	segs, err := r.ResolvePath(opts.owner, path)
	if err != nil {
		return err
	}
	if len(segs) == 0 {
		return ErrEmptyPath
	}

	field := fieldpath.Field{
		Prefix:  fieldpath.NewPrefix(prefixSegs...).CombineAll(segs[:len(segs)-1]...),
		Segment: segs[len(segs)-1],
	}
	slog.Debug("formatted field", slog.String("path", path), slog.Int("segments", field.Prefix.Len()+1))

	_, err = fmt.Fprintf(out, "name\t%s\nid\t%s\nlabel\t%s\n", field.FieldName(), field.FieldID(), field.Label())
	return err
}

func loadCatalog(path string) (fieldpath.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return fieldpath.Catalog{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return fieldpath.LoadCatalog(f)
}
