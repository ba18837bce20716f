// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package controller

import "errors"

var errNoAsker = errors.New("controller: no inference client configured")
