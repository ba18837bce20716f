// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package controller sequences user commands into conversation state changes
// and inference calls.
//
// Every user interaction is a Command handed to Controller.Handle. Submitting
// is split in two so that a UI never blocks while the model thinks:
//
//	req, ok := ctl.Handle(controller.Submit{})   // append user msg, go busy, clear draft
//	if ok {
//	    res := ctl.Run(ctx, req)                  // blocking Ask, run off the UI loop
//	    ctl.Complete(res)                         // append reply or placeholder, go idle
//	}
//
// Line-mode callers that can block use SubmitAndWait instead.
package controller
