// Package preprocess - the parallel per-partition pipeline.
//
// Concurrency model: one goroutine per partition, locked to an OS thread
// and pinned to its configured CPU. Workers share no mutable state; the
// single join is the only synchronization. Worker failures surface as the
// first error after the join.
package preprocess

import (
	"runtime"
	"sync"

	"github.com/sparsekit/csx/csxmat"
	"github.com/sparsekit/csx/drle"
	"github.com/sparsekit/csx/partition"
)

// Preprocess runs the whole pipeline on a general matrix: split, encode
// every partition in parallel, serialize, fuse.
func Preprocess(src partition.CoordSource, nrRows, nrCols, nrNzeros int, cfg Config) (*Matrix, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	parts, err := Split(src, nrRows, nrCols, nrNzeros, len(cfg.CPUs))
	if err != nil {
		return nil, err
	}

	blobs := make([]*csxmat.Blob, len(parts))
	errs := make([]error, len(parts))

	var wg sync.WaitGroup
	for i := range parts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			pinCPU(cfg.CPUs[i])

			blobs[i], errs[i] = encodePartition(parts[i], cfg)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return &Matrix{
		Blobs:  blobs,
		CPUs:   append([]int(nil), cfg.CPUs...),
		NrRows: nrRows,
		NrCols: nrCols,
		Nnz:    nrNzeros,
	}, nil
}

// PreprocessSym is the symmetric pipeline: split, divide each slab into
// m1/m2, encode both halves, serialize with the dense diagonal.
func PreprocessSym(src partition.CoordSource, nrRows, nrCols, nrStored int, cfg Config) (*SymMatrix, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	parts, err := SplitSym(src, nrRows, nrCols, nrStored, len(cfg.CPUs))
	if err != nil {
		return nil, err
	}

	blobs := make([]*csxmat.SymBlob, len(parts))
	errs := make([]error, len(parts))

	var wg sync.WaitGroup
	for i := range parts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			pinCPU(cfg.CPUs[i])

			blobs[i], errs[i] = encodeSymPartition(parts[i], cfg)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return &SymMatrix{
		Blobs:  blobs,
		CPUs:   append([]int(nil), cfg.CPUs...),
		NrRows: nrRows,
		Nnz:    nrStored,
	}, nil
}

// encodePartition runs the single-worker pipeline: pattern engine then
// blob serialization.
func encodePartition(p *partition.Partition, cfg Config) (*csxmat.Blob, error) {
	m, err := drle.NewManager(p, cfg.engineOptions())
	if err != nil {
		return nil, err
	}

	if cfg.EncodeDeltas != nil {
		if err := m.EncodeSerial(cfg.Kinds, cfg.EncodeDeltas); err != nil {
			return nil, err
		}
	} else {
		m.EncodeAll()
	}

	return csxmat.Build(p, csxmat.DefaultOptions())
}

// encodeSymPartition divides the slab and encodes both halves
// independently before serializing.
func encodeSymPartition(s *partition.SymPartition, cfg Config) (*csxmat.SymBlob, error) {
	if err := s.DivideMatrix(); err != nil {
		return nil, err
	}

	for _, half := range []*partition.Partition{s.M1(), s.M2()} {
		m, err := drle.NewManager(half, cfg.engineOptions())
		if err != nil {
			return nil, err
		}
		if cfg.EncodeDeltas != nil {
			if err := m.EncodeSerial(cfg.Kinds, cfg.EncodeDeltas); err != nil {
				return nil, err
			}
		} else {
			m.EncodeAll()
		}
	}
	if err := s.MarkEncoded(); err != nil {
		return nil, err
	}

	return csxmat.BuildSym(s, csxmat.DefaultOptions())
}
