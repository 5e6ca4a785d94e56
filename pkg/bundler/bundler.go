package bundler

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/denotag/pkg/errors"
	"github.com/arthur-debert/denotag/pkg/logging"
	"github.com/arthur-debert/denotag/pkg/types"
)

const sourcesNamespace = "denotag-sources"

// ESBuild bundles entry points with esbuild
type ESBuild struct {
	logger zerolog.Logger
}

var _ types.Bundler = (*ESBuild)(nil)

// New creates an esbuild bundle backend
func New() *ESBuild {
	return &ESBuild{logger: logging.GetLogger("bundler")}
}

// Bundle bundles req.File. Errors reported by esbuild are returned as
// diagnostics together with an ErrBundle error; warnings are returned and
// logged.
func (b *ESBuild) Bundle(ctx context.Context, req types.BundleRequest) ([]types.Diagnostic, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	if req.File == "" {
		return nil, "", errors.New(errors.ErrInvalidInput, "bundle requires an entry file")
	}

	opts, err := buildOptions(req)
	if err != nil {
		return nil, "", err
	}

	result := api.Build(opts)

	diagnostics := make([]types.Diagnostic, 0, len(result.Errors)+len(result.Warnings))
	for _, m := range result.Errors {
		diagnostics = append(diagnostics, toDiagnostic("error", m))
	}
	for _, m := range result.Warnings {
		diagnostics = append(diagnostics, toDiagnostic("warning", m))
	}
	for _, d := range diagnostics {
		event := b.logger.Warn()
		if d.Severity == "error" {
			event = b.logger.Error()
		}
		event.Str("file", d.File).
			Int("line", d.Line).
			Int("column", d.Column).
			Str("entry", req.File).
			Msg(d.Text)
	}

	if len(result.Errors) > 0 {
		return diagnostics, "", errors.Newf(errors.ErrBundle, "esbuild reported %d error(s) bundling %s",
			len(result.Errors), req.File).
			WithDetail("entry", req.File)
	}

	var out strings.Builder
	for _, f := range result.OutputFiles {
		out.Write(f.Contents)
	}
	return diagnostics, out.String(), nil
}

func buildOptions(req types.BundleRequest) (api.BuildOptions, error) {
	dir := req.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return api.BuildOptions{}, errors.Wrap(err, errors.ErrInternal, "cannot determine working directory")
		}
		dir = wd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return api.BuildOptions{}, errors.Wrap(err, errors.ErrInternal, "cannot resolve bundle directory")
	}

	format, err := parseFormat(req.Options.Format)
	if err != nil {
		return api.BuildOptions{}, err
	}
	platform, err := parsePlatform(req.Options.Platform)
	if err != nil {
		return api.BuildOptions{}, err
	}
	target, err := parseTarget(req.Options.Target)
	if err != nil {
		return api.BuildOptions{}, err
	}

	opts := api.BuildOptions{
		EntryPoints:       []string{req.File},
		Bundle:            true,
		Write:             false,
		AbsWorkingDir:     dir,
		Format:            format,
		Platform:          platform,
		Target:            target,
		External:          req.Options.External,
		MinifyWhitespace:  req.Options.Minify,
		MinifyIdentifiers: req.Options.Minify,
		MinifySyntax:      req.Options.Minify,
		LogLevel:          api.LogLevelSilent,
	}
	if len(req.Sources) > 0 {
		opts.Plugins = []api.Plugin{sourcesPlugin(req.Sources, dir)}
	}
	return opts, nil
}

// sourcesPlugin serves modules from memory. Keys are slash separated paths
// relative to dir; imports between in-memory modules resolve relative to the
// importer and fall back to disk when no key matches.
func sourcesPlugin(sources map[string]string, dir string) api.Plugin {
	return api.Plugin{
		Name: "denotag-sources",
		Setup: func(build api.PluginBuild) {
			build.OnResolve(api.OnResolveOptions{Filter: ".*"},
				func(args api.OnResolveArgs) (api.OnResolveResult, error) {
					key := path.Clean(args.Path)
					if args.Namespace == sourcesNamespace && !path.IsAbs(args.Path) {
						key = path.Join(path.Dir(args.Importer), args.Path)
					}
					found, ok := lookup(sources, key)
					if !ok {
						return api.OnResolveResult{}, nil
					}
					return api.OnResolveResult{Path: found, Namespace: sourcesNamespace}, nil
				})

			build.OnLoad(api.OnLoadOptions{Filter: ".*", Namespace: sourcesNamespace},
				func(args api.OnLoadArgs) (api.OnLoadResult, error) {
					contents := sources[args.Path]
					return api.OnLoadResult{
						Contents:   &contents,
						ResolveDir: filepath.Join(dir, filepath.FromSlash(path.Dir(args.Path))),
						Loader:     loaderFor(args.Path),
					}, nil
				})
		},
	}
}

// lookup finds key in sources, trying the extensions esbuild would try
func lookup(sources map[string]string, key string) (string, bool) {
	for _, candidate := range []string{key, key + ".ts", key + ".tsx", key + ".js", key + ".jsx"} {
		if _, ok := sources[candidate]; ok {
			return candidate, true
		}
	}
	return "", false
}

func loaderFor(name string) api.Loader {
	switch strings.ToLower(path.Ext(name)) {
	case ".ts", ".mts", ".cts":
		return api.LoaderTS
	case ".tsx":
		return api.LoaderTSX
	case ".jsx":
		return api.LoaderJSX
	case ".json":
		return api.LoaderJSON
	default:
		return api.LoaderJS
	}
}

func toDiagnostic(severity string, m api.Message) types.Diagnostic {
	d := types.Diagnostic{Severity: severity, Text: m.Text}
	if m.Location != nil {
		d.File = m.Location.File
		d.Line = m.Location.Line
		d.Column = m.Location.Column
	}
	return d
}
