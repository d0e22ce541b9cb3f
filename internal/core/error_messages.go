// Package core provides the filtering logic for the conference program
// dashboard.
//
// # Error Codes Reference
//
// This file defines user-friendly error messages with codes for support
// reference. When users encounter errors, they can quote the error code
// for faster diagnosis.
//
// Error codes are grouped by category:
//
// # Data Source Errors (DAT001-DAT099)
//
// Errors raised while loading the reference tables at startup:
//
//	DAT001 - Source unreadable: A source file is missing or unreadable
//	         Action: Check the configured path and file permissions
//	         Patterns: "no such file", "permission denied"
//
//	DAT002 - Schema mismatch: A source table is missing required columns
//	         Action: Check the column headers against the expected schema
//	         Patterns: "missing required column"
//
//	DAT003 - Malformed row: A cell or row could not be interpreted
//	         Action: Fix the reported row in the source data
//	         Patterns: "bad value", "begins after it ends",
//	         "wrong number of fields"
//
//	DAT004 - Database unreachable: A database-backed source refused the
//	         connection
//	         Action: Verify the locator and that the database is up
//	         Patterns: "connection refused", "failed to connect"
//
//	DAT005 - Unsupported locator: No source kind claims the locator
//	         Action: Use a .csv/.db/.sqlite path or a postgres:// URL
//	         Patterns: "unsupported source"
//
// # Selection Validation Errors (VAL001-VAL099)
//
// Errors raised when a hand-edited URL carries values the control surface
// never offers:
//
//	VAL001 - Unknown day: Day code is not one of the seven conference days
//	         Action: Pick days from the day selector
//	         Patterns: "unknown day"
//
//	VAL002 - Bad time window: Window bounds are inverted or not numeric
//	         Action: Pick hours from the range controls
//	         Patterns: "invalid time window", "invalid hour"
//
// # Request Errors (REQ001-REQ002)
//
//	REQ001 - Request cancelled
//	         Patterns: "context canceled"
//
//	REQ002 - Request timed out
//	         Patterns: "context deadline exceeded"
//
// # Rate Limiting (RATE001)
//
//	RATE001 - Rate limited: Too many requests
//	          Patterns: "rate limit"
//
// # Default Error (ERR000)
//
// Fallback when no specific pattern matches. Check the application logs
// for the original technical error when users report ERR000.
//
// # Pattern Matching
//
// Error patterns are matched case-insensitively using strings.Contains.
// The first matching pattern wins, so more specific patterns should be
// defined before general ones.
package core

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error patterns (case-insensitive) to user
// messages. Patterns are matched using strings.Contains and the first
// match wins, so specific patterns come before general ones.
var errorPatterns = []errorPattern{
	// =========================================================================
	// Data Source Errors (DAT001-DAT005)
	// These surface at startup or from the check command, never mid-request:
	// the snapshot either loads completely or the process refuses to start.
	// =========================================================================
	{
		pattern: "no such file",
		msg: UserMessage{
			Message: "A source file is missing",
			Action:  "Check the configured data path",
			Code:    "DAT001",
		},
	},
	{
		pattern: "permission denied",
		msg: UserMessage{
			Message: "A source file is not readable",
			Action:  "Check file permissions on the data files",
			Code:    "DAT001",
		},
	},
	{
		pattern: "missing required column",
		msg: UserMessage{
			Message: "A source table is missing required columns",
			Action:  "Check the column headers against the expected schema",
			Code:    "DAT002",
		},
	},
	{
		pattern: "bad value",
		msg: UserMessage{
			Message: "A source cell could not be interpreted",
			Action:  "Fix the reported row in the source data",
			Code:    "DAT003",
		},
	},
	{
		pattern: "begins after it ends",
		msg: UserMessage{
			Message: "A session's time range is inverted",
			Action:  "Fix the begin/end hours on the reported row",
			Code:    "DAT003",
		},
	},
	{
		pattern: "wrong number of fields",
		msg: UserMessage{
			Message: "A source row has the wrong number of cells",
			Action:  "Fix the reported row in the source data",
			Code:    "DAT003",
		},
	},
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "The source database refused the connection",
			Action:  "Verify the locator and that the database is up",
			Code:    "DAT004",
		},
	},
	{
		pattern: "failed to connect",
		msg: UserMessage{
			Message: "The source database could not be reached",
			Action:  "Verify the locator and that the database is up",
			Code:    "DAT004",
		},
	},
	{
		pattern: "unsupported source",
		msg: UserMessage{
			Message: "No source kind claims this locator",
			Action:  "Use a .csv/.db/.sqlite path or a postgres:// URL",
			Code:    "DAT005",
		},
	},

	// =========================================================================
	// Selection Validation Errors (VAL001-VAL002)
	// The control surface only offers known values, so these mean a
	// hand-edited URL.
	// =========================================================================
	{
		pattern: "unknown day",
		msg: UserMessage{
			Message: "Unknown day code",
			Action:  "Pick days from the day selector",
			Code:    "VAL001",
		},
	},
	{
		pattern: "invalid time window",
		msg: UserMessage{
			Message: "The time window is inverted",
			Action:  "Pick hours from the range controls",
			Code:    "VAL002",
		},
	},
	{
		pattern: "invalid hour",
		msg: UserMessage{
			Message: "An hour value is not numeric",
			Action:  "Pick hours from the range controls",
			Code:    "VAL002",
		},
	},

	// =========================================================================
	// Request Errors (REQ001-REQ002)
	// =========================================================================
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "REQ001",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Please try again",
			Code:    "REQ002",
		},
	},

	// =========================================================================
	// Rate Limiting (RATE001)
	// =========================================================================
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// It searches through known error patterns (case-insensitive) and returns
// the first match. If no pattern matches, a generic fallback message with
// code ERR000 is returned.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing checks if an error matches a known pattern and should be
// shown to users. Returns true for specific patterns, false for the
// generic ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	msg := MapError(err)
	return msg.Code != defaultMessage.Code
}
