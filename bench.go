// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
)

const (
	phaseAdd      = "add"
	phaseRemove   = "remove"
	phaseContains = "contains"
)

// benchResult holds the timings of one structure
type benchResult struct {
	Structure string
	Add       time.Duration
	Remove    time.Duration
	Contains  time.Duration
	Found     int // keys reported present by the contains phase
	Count     int // entries left at the end
	Height    int // only set for the AVL tree
}

type benchReport struct {
	Seed    int64
	Keys    int
	Removed int
	Results []benchResult
}

type benchRunner struct {
	cfg         BenchConfig
	verify      bool
	logger      *log.Logger
	progressOut io.Writer
}

// run generates the keys, warms up an AVL tree, then times add, remove and
// contains on every structure in turn. Every structure must end with the
// same count and find the same keys.
func (r *benchRunner) run() (*benchReport, error) {
	seed := resolveSeed(r.cfg.Seed)
	keys := generateKeys(r.cfg.Count, seed)
	window := removalWindow(keys, r.cfg.RemoveFrom, r.cfg.RemoveTo)
	r.logger.WithFields(log.Fields{
		seedKey:  seed,
		"keys":   len(keys),
		"remove": len(window),
	}).Info("keys generated")

	warmup := newAVLMap()
	for _, k := range keys {
		if err := warmup.Insert(k); err != nil {
			return nil, fmt.Errorf("warm-up: %w", err)
		}
	}

	report := &benchReport{Seed: seed, Keys: len(keys), Removed: len(window)}
	expected := len(keys) - len(window)

	for _, s := range newStructures(r.cfg.BTreeDegree) {
		res, err := r.measure(s, keys, window)
		if err != nil {
			return nil, err
		}
		if res.Count != expected || res.Found != expected {
			return nil, fmt.Errorf("%s: count %d, found %d, want %d", res.Structure, res.Count, res.Found, expected)
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}

func (r *benchRunner) measure(s orderedIntMap, keys, window []int) (benchResult, error) {
	res := benchResult{Structure: s.Name()}

	var bar *progressbar.ProgressBar
	if r.cfg.ShowProgress {
		bar = progressbar.NewOptions(2*len(keys)+len(window),
			progressbar.OptionSetWriter(r.progressOut),
			progressbar.OptionSetDescription(fmt.Sprintf("⏱  %-6s", s.Name())),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(r.progressOut)
			}),
		)
	}
	advance := func(n int) {
		if bar != nil {
			bar.Add(n)
		}
	}

	start := time.Now()
	for _, k := range keys {
		if err := s.Insert(k); err != nil {
			return res, fmt.Errorf("%s %s: %w", s.Name(), phaseAdd, err)
		}
	}
	res.Add = time.Since(start)
	r.logPhase(s.Name(), phaseAdd, len(keys), res.Add)
	advance(len(keys))
	if err := r.verifyTree(s, phaseAdd); err != nil {
		return res, err
	}

	start = time.Now()
	for _, k := range window {
		if err := s.Remove(k); err != nil {
			return res, fmt.Errorf("%s %s: %w", s.Name(), phaseRemove, err)
		}
	}
	res.Remove = time.Since(start)
	r.logPhase(s.Name(), phaseRemove, len(window), res.Remove)
	advance(len(window))
	if err := r.verifyTree(s, phaseRemove); err != nil {
		return res, err
	}

	start = time.Now()
	for _, k := range keys {
		ok, err := s.Contains(k)
		if err != nil {
			return res, fmt.Errorf("%s %s: %w", s.Name(), phaseContains, err)
		}
		if ok {
			res.Found++
		}
	}
	res.Contains = time.Since(start)
	r.logPhase(s.Name(), phaseContains, len(keys), res.Contains)
	advance(len(keys))

	res.Count = s.Len()
	if m, ok := s.(*avlMap); ok {
		res.Height = m.tree.Height()
	}
	return res, nil
}

func (r *benchRunner) logPhase(structure, phase string, ops int, elapsed time.Duration) {
	r.logger.WithFields(log.Fields{
		structureKey: structure,
		phaseKey:     phase,
		opsKey:       ops,
		elapsedKey:   elapsed,
	}).Debug("phase finished")
}

// verifyTree runs the full invariant check when --verify is set
func (r *benchRunner) verifyTree(s orderedIntMap, phase string) error {
	m, ok := s.(*avlMap)
	if !r.verify || !ok {
		return nil
	}
	if err := m.tree.Check(); err != nil {
		return fmt.Errorf("after %s: %w", phase, err)
	}
	r.logger.WithField(phaseKey, phase).Debug("avl invariants hold")
	return nil
}
