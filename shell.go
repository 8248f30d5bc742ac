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
	"bufio"
	"errors"
	"fmt"
	"io"
)

// runShell reads commands from in until quit or EOF. Command errors are
// printed and the session carries on.
func runShell(in io.Reader, out io.Writer, s *session, prompt string) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, prompt)

	for scanner.Scan() {
		result, err := s.execute(scanner.Text())
		switch {
		case errors.Is(err, errQuit):
			return nil
		case err != nil:
			fmt.Fprintf(out, "%serror:%s %v\n", Error, Reset, err)
		case result != "":
			fmt.Fprintln(out, result)
		}
		fmt.Fprint(out, prompt)
	}
	fmt.Fprintln(out)
	return scanner.Err()
}
