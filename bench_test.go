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
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/cybrota/avlmap/avl"
)

func TestStructuresAgree(t *testing.T) {
	keys := generateKeys(300, 3)
	window := removalWindow(keys, 50, 120)
	removed := make(map[int]bool, len(window))
	for _, k := range window {
		removed[k] = true
	}

	for _, s := range newStructures(4) {
		t.Run(s.Name(), func(t *testing.T) {
			for _, k := range keys {
				if err := s.Insert(k); err != nil {
					t.Fatalf("Insert(%d): %v", k, err)
				}
			}
			if err := s.Insert(keys[0]); !errors.Is(err, avl.ErrDuplicateKey) {
				t.Errorf("duplicate Insert error = %v; want ErrDuplicateKey", err)
			}
			if s.Len() != len(keys) {
				t.Errorf("Len after inserts = %d; want %d", s.Len(), len(keys))
			}

			for _, k := range window {
				if err := s.Remove(k); err != nil {
					t.Fatalf("Remove(%d): %v", k, err)
				}
			}
			if err := s.Remove(10 * len(keys)); err != nil {
				t.Errorf("removing an absent key: %v", err)
			}
			if s.Len() != len(keys)-len(window) {
				t.Errorf("Len after removes = %d; want %d", s.Len(), len(keys)-len(window))
			}

			for _, k := range keys {
				ok, err := s.Contains(k)
				if err != nil {
					t.Fatalf("Contains(%d): %v", k, err)
				}
				if ok == removed[k] {
					t.Errorf("Contains(%d) = %t; removed = %t", k, ok, removed[k])
				}
			}
		})
	}
}

func TestBenchRunnerSmallRun(t *testing.T) {
	var logs, progress bytes.Buffer
	runner := &benchRunner{
		cfg: BenchConfig{
			Count:        2000,
			RemoveFrom:   100,
			RemoveTo:     400,
			Seed:         11,
			ShowProgress: true,
			BTreeDegree:  8,
		},
		verify:      true,
		logger:      newLoggerTo(&logs, LogConfig{Level: "debug", Format: "text"}),
		progressOut: &progress,
	}

	report, err := runner.run()
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if report.Seed != 11 || report.Keys != 2000 || report.Removed != 300 {
		t.Errorf("report header = %+v", report)
	}

	wantOrder := []string{structureAVL, structureBTree, structureLLRB}
	if len(report.Results) != len(wantOrder) {
		t.Fatalf("got %d results; want %d", len(report.Results), len(wantOrder))
	}
	for i, res := range report.Results {
		if res.Structure != wantOrder[i] {
			t.Errorf("result %d is %s; want %s", i, res.Structure, wantOrder[i])
		}
		if res.Count != 1700 || res.Found != 1700 {
			t.Errorf("%s: count %d, found %d; want 1700", res.Structure, res.Count, res.Found)
		}
	}
	// 1700 entries need at least 11 levels and at most 1.44*log2(n)
	if h := report.Results[0].Height; h < 11 || h > 16 {
		t.Errorf("avl height %d out of range", h)
	}
	if report.Results[1].Height != 0 {
		t.Error("height is only reported for the AVL tree")
	}

	if !strings.Contains(logs.String(), "avl invariants hold") {
		t.Error("verify did not log the invariant checks")
	}
	if !strings.Contains(logs.String(), "structure=llrb") {
		t.Error("phase logs are missing the structure field")
	}
	if progress.Len() == 0 {
		t.Error("progress bars were not drawn")
	}
}

func TestBenchRunnerWithoutProgress(t *testing.T) {
	var progress bytes.Buffer
	runner := &benchRunner{
		cfg:         BenchConfig{Count: 50, RemoveFrom: 0, RemoveTo: 10, Seed: 5, BTreeDegree: 2},
		logger:      newLoggerTo(io.Discard, LogConfig{Level: "error"}),
		progressOut: &progress,
	}
	report, err := runner.run()
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if progress.Len() != 0 {
		t.Error("progress was drawn with ShowProgress off")
	}
	if report.Results[0].Count != 40 {
		t.Errorf("count = %d; want 40", report.Results[0].Count)
	}
}

func TestRenderReport(t *testing.T) {
	report := &benchReport{
		Seed:    3,
		Keys:    10,
		Removed: 2,
		Results: []benchResult{
			{Structure: structureAVL, Add: 1500 * time.Microsecond, Remove: 250 * time.Microsecond, Contains: time.Millisecond, Found: 8, Count: 8, Height: 4},
			{Structure: structureBTree, Add: 2 * time.Millisecond, Found: 8, Count: 8},
		},
	}

	var out bytes.Buffer
	renderReport(&out, report, false)
	text := strings.ToLower(out.String())

	for _, want := range []string{"10 keys, 2 removed, seed 3", "structure", "contains (ms)", "avl", "btree", "1.50", "0.25", "1.00", "2.00"} {
		if !strings.Contains(text, want) {
			t.Errorf("report is missing %q:\n%s", want, text)
		}
	}
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := newLoggerTo(&buf, LogConfig{Level: "loud", Format: "json"})
	if logger.GetLevel().String() != "info" {
		t.Errorf("unknown level gave %s; want info", logger.GetLevel())
	}
	if !strings.Contains(buf.String(), `"level":"warning"`) {
		t.Errorf("expected a JSON warning about the level, got %q", buf.String())
	}
}
