// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Defaults for optional request fields. Every default the API applies
// is listed here.
const (
	DefaultPriority       = PriorityMedium
	DefaultSeverity       = SeverityMedium
	DefaultIncidentStatus = IncidentReported
	DefaultSosStatus      = SosActive
)

// Success messages returned alongside created or changed resources.
const (
	MsgSignedUp        = "User registered successfully"
	MsgLoggedIn        = "Login successful"
	MsgContactCreated  = "Emergency contact created"
	MsgContactUpdated  = "Contact updated successfully"
	MsgContactDeleted  = "Contact deleted successfully"
	MsgCheckRecorded   = "Health check recorded"
	MsgIncidentCreated = "Incident reported"
	MsgActivityLogged  = "Activity logged"
	MsgSOSActivated    = "SOS activated"
	MsgAPIRunning      = "RAAH-SETU API is running"
	APIVersion         = "2.0"
)
