/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package render

import (
	"fmt"
	"strconv"
)

const mbPerGB = 1024

func formatCount(count int) string {
	return strconv.Itoa(count)
}

// formatMemory renders a megabyte figure in the largest unit it divides
// evenly into.
func formatMemory(mb int) string {
	switch {
	case mb >= mbPerGB*mbPerGB && mb%(mbPerGB*mbPerGB) == 0:
		return fmt.Sprintf("%d TB", mb/(mbPerGB*mbPerGB))
	case mb >= mbPerGB && mb%mbPerGB == 0:
		return fmt.Sprintf("%d GB", mb/mbPerGB)
	default:
		return fmt.Sprintf("%d MB", mb)
	}
}

func formatDisk(gb int) string {
	return fmt.Sprintf("%d GB", gb)
}

// formatPosition renders a rack unit position, with the mounted face when
// known.
func formatPosition(position int, face string) string {
	if face == "" {
		return fmt.Sprintf("U%d", position)
	}

	return fmt.Sprintf("U%d / %s", position, face)
}
