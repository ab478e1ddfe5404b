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


// Package provider defines the abstraction over external nutrient reference
// databases.
//
// A provider is anything that can turn a food query into a list of raw
// candidate records. Concrete implementations live in subpackages:
//   - fdc: USDA FoodData Central, an authoritative structured nutrient database
//   - off: Open Food Facts, a community-maintained branded-product database
//   - mock: test doubles with injectable behavior
//
// The search orchestrator consumes providers purely through the Client
// interface; endpoint and credential details stay inside each implementation.
package provider
