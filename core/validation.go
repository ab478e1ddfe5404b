// Copyright 2025 Poiesic Systems
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


package core

import "fmt"

// ValidateRawCandidate validates a RawCandidate according to domain rules.
//
// Validation rules:
//   - Description must not be empty
//   - All macro values must be non-negative
//
// NOT validated:
//   - ServingSize (empty is valid, a default is applied at output mapping)
//   - All-zero macros (filtered separately by the orchestrator, not malformed)
func ValidateRawCandidate(candidate *RawCandidate) error {
	if candidate == nil {
		return fmt.Errorf("%w: candidate is nil", ErrInvalidCandidate)
	}

	if candidate.Description == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCandidate, ErrEmptyDescription)
	}

	if err := ValidateMacros(candidate.Macros); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCandidate, err)
	}

	return nil
}

// ValidateMacros validates that all macro values are non-negative.
func ValidateMacros(m Macros) error {
	if m.Calories < 0 || m.Protein < 0 || m.Carbs < 0 || m.Fat < 0 {
		return ErrNegativeMacro
	}
	return nil
}
