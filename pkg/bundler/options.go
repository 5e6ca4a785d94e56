package bundler

import (
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/arthur-debert/denotag/pkg/errors"
)

func parseFormat(s string) (api.Format, error) {
	switch strings.ToLower(s) {
	case "", "esm":
		return api.FormatESModule, nil
	case "iife":
		return api.FormatIIFE, nil
	case "cjs":
		return api.FormatCommonJS, nil
	default:
		return api.FormatDefault, errors.Newf(errors.ErrInvalidInput, "unknown bundle format: %s", s)
	}
}

func parsePlatform(s string) (api.Platform, error) {
	switch strings.ToLower(s) {
	case "", "browser":
		return api.PlatformBrowser, nil
	case "node":
		return api.PlatformNode, nil
	case "neutral":
		return api.PlatformNeutral, nil
	default:
		return api.PlatformBrowser, errors.Newf(errors.ErrInvalidInput, "unknown bundle platform: %s", s)
	}
}

var targets = map[string]api.Target{
	"esnext": api.ESNext,
	"es5":    api.ES5,
	"es2015": api.ES2015,
	"es2016": api.ES2016,
	"es2017": api.ES2017,
	"es2018": api.ES2018,
	"es2019": api.ES2019,
	"es2020": api.ES2020,
	"es2021": api.ES2021,
	"es2022": api.ES2022,
}

func parseTarget(s string) (api.Target, error) {
	if s == "" {
		return api.ESNext, nil
	}
	t, ok := targets[strings.ToLower(s)]
	if !ok {
		return api.DefaultTarget, errors.Newf(errors.ErrInvalidInput, "unknown bundle target: %s", s)
	}
	return t, nil
}
