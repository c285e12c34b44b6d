package pipeline

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sortwheel/pkg/errors"
	"github.com/matzehuels/sortwheel/pkg/sorting"
)

// Stage kinds accepted in scripts.
const (
	KindBuild   = "build"
	KindShuffle = "shuffle"
	KindSort    = "sort"
	KindPause   = "pause"
)

// Script is the TOML form of a pipeline:
//
//	[[stage]]
//	kind = "build"
//	length = 1500
//
//	[[stage]]
//	kind = "shuffle"
//	seed = 7
//
//	[[stage]]
//	kind = "sort"
//	algorithm = "quick"
//	quantum = 250
//
//	[[stage]]
//	kind = "pause"
//	duration = "2s"
//
// Zero quanta, lengths and seeds fall back to the package defaults.
type Script struct {
	Stages []ScriptStage `toml:"stage"`
}

// ScriptStage is one [[stage]] table.
type ScriptStage struct {
	Kind        string        `toml:"kind"`
	Length      int           `toml:"length"`
	Quantum     int           `toml:"quantum"`
	Seed        uint64        `toml:"seed"`
	Algorithm   string        `toml:"algorithm"`
	BucketSize  int           `toml:"bucket_size"`
	BucketCount int           `toml:"bucket_count"`
	Duration    time.Duration `toml:"duration"`
}

// LoadScript reads and compiles the script at path.
func LoadScript(path string) (*Pipeline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScript, err, "open script")
	}
	defer f.Close()
	return ParseScript(f)
}

// ParseScript decodes a TOML script and compiles it into a pipeline.
// Unknown keys are rejected.
func ParseScript(r io.Reader) (*Pipeline, error) {
	var s Script
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScript, err, "decode script")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidScript, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return s.Compile()
}

// Compile validates every stage and returns the pipeline they describe.
func (s Script) Compile() (*Pipeline, error) {
	if len(s.Stages) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidScript, "script has no stages")
	}
	p := New()
	for i, st := range s.Stages {
		stage, err := st.compile()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScript, err, "stage %d", i+1)
		}
		p.Append(stage)
	}
	return p, nil
}

func (st ScriptStage) compile() (Stage, error) {
	switch strings.ToLower(st.Kind) {
	case KindBuild:
		n := orDefault(st.Length, DefaultLength)
		if err := errors.ValidateLength(n); err != nil {
			return nil, err
		}
		q := orDefault(st.Quantum, DefaultBuildQuantum)
		if err := errors.ValidateQuantum(q); err != nil {
			return nil, err
		}
		return Build(n, q), nil

	case KindShuffle:
		q := orDefault(st.Quantum, DefaultShuffleQuantum)
		if err := errors.ValidateQuantum(q); err != nil {
			return nil, err
		}
		seed := st.Seed
		if seed == 0 {
			seed = DefaultSeed
		}
		return Shuffle(q, seed), nil

	case KindSort:
		info, ok := sorting.Lookup(st.Algorithm)
		if !ok || !info.Sort {
			return nil, errors.New(errors.ErrCodeInvalidAlgorithm, "unknown sorting algorithm %q", st.Algorithm)
		}
		q := orDefault(st.Quantum, DefaultSortQuantum)
		if err := errors.ValidateQuantum(q); err != nil {
			return nil, err
		}
		opts := Options{BucketSize: st.BucketSize, BucketCount: st.BucketCount}
		if st.BucketSize < 0 || st.BucketCount < 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "bucket options cannot be negative")
		}
		return Sort(info.ID, q, opts.SortOptions()...), nil

	case KindPause:
		if err := errors.ValidatePause(st.Duration); err != nil {
			return nil, err
		}
		return Pause(st.Duration), nil

	default:
		return nil, errors.New(errors.ErrCodeInvalidScript, "unknown stage kind %q", st.Kind)
	}
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
