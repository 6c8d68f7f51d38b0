// Package preprocess - building the Config from the environment.
//
// Unparseable values are reported as ErrBadConfig with the offending
// variable named; the caller treats them as fatal at startup.
package preprocess

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sparsekit/csx/partition"
)

// ConfigFromEnv reads every recognized variable, falling back to the
// documented defaults for absent ones.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvMTConf); v != "" {
		cpus, err := parseIntList(v)
		if err != nil {
			return cfg, fmt.Errorf("%s=%q: %w", EnvMTConf, v, ErrBadConfig)
		}
		cfg.CPUs = cpus
	}

	if v := os.Getenv(EnvXformConf); v != "" {
		ids, err := parseIntList(v)
		if err != nil {
			return cfg, fmt.Errorf("%s=%q: %w", EnvXformConf, v, ErrBadConfig)
		}
		kinds := make([]partition.IterOrder, 0, len(ids))
		for _, id := range ids {
			t, err := partition.ParseIterOrder(id)
			if err != nil || t == partition.None {
				return cfg, fmt.Errorf("%s=%q: %w", EnvXformConf, v, ErrBadConfig)
			}
			kinds = append(kinds, t)
		}
		cfg.Kinds = kinds
	}

	if v := os.Getenv(EnvWindowSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("%s=%q: %w", EnvWindowSize, v, ErrBadConfig)
		}
		cfg.WindowSize = n
	}

	if v := os.Getenv(EnvSamples); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("%s=%q: %w", EnvSamples, v, ErrBadConfig)
		}
		cfg.SamplesMax = n
	}

	if v := os.Getenv(EnvSamplingProb); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil || p < 0 || p > 1 {
			return cfg, fmt.Errorf("%s=%q: %w", EnvSamplingProb, v, ErrBadConfig)
		}
		cfg.SamplingProb = p
	}

	// Any non-empty value enables block splitting; the value itself is not
	// interpreted.
	if os.Getenv(EnvSplitBlocks) != "" {
		cfg.SplitBlocks = true
	}

	if v := os.Getenv(EnvEncodeDeltas); v != "" {
		deltas, err := parseEncodeDeltas(v)
		if err != nil {
			return cfg, fmt.Errorf("%s=%q: %w", EnvEncodeDeltas, v, ErrBadConfig)
		}
		cfg.EncodeDeltas = deltas
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// parseIntList parses "a,b,c" into ints.
func parseIntList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, nil
}

// parseEncodeDeltas parses "<d1,d2,...><...>" into per-kind delta lists,
// positionally matched to XFORM_CONF.
func parseEncodeDeltas(s string) ([][]int, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "<") || !strings.HasSuffix(s, ">") {
		return nil, ErrBadConfig
	}

	body := strings.TrimSuffix(strings.TrimPrefix(s, "<"), ">")
	groups := strings.Split(body, "><")
	out := make([][]int, 0, len(groups))
	for _, g := range groups {
		deltas, err := parseIntList(g)
		if err != nil {
			return nil, err
		}
		for _, d := range deltas {
			if d < 1 {
				return nil, ErrBadConfig
			}
		}
		out = append(out, deltas)
	}

	return out, nil
}
