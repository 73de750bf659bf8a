// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Every JSON body decodes into a typed request. Unknown fields are
rejected by the decoder, and each request has a Validate method that
returns an apierr validation error (HTTP 400):

  - SignupRequest: name, email, phone, password
  - LoginRequest: email, password
  - CreateContactRequest: user_id, name, phone, relationship, priority?, email?
  - UpdateContactRequest: any subset of name, phone, relationship, priority, email
  - CreateHealthCheckRequest: user_id, mood, heart_rate?, blood_pressure?, location?, notes?
  - CreateIncidentRequest: user_id, title, description, type, location, severity?
  - CreateActivityRequest: user_id, type, description, location?
  - ActivateSOSRequest: user_id, location?

Optional fields that have a default (priority, severity) get it from
ApplyDefaults. All defaults live in defaults.go.

# Response Types

Create endpoints return the message plus the new id under a resource
specific key (contact_id, check_id, incident_id, activity_id, sos_id).
List endpoints wrap rows under a plural key (contacts, checks,
incidents, activities, alerts). Errors are always ErrorResponse:

	{"error": "contact not found"}

# Enumerations

Priority, Severity, IncidentStatus and SosStatus are string types with
an explicit ordinal:

	low(1) < medium(2) < high(3)               Priority
	low(1) < medium(2) < high(3) < critical(4) Severity

Rank is the only way to compare two values. Comparing the tags as text
gives "high" < "low" < "medium", which is wrong. PriorityOrderSQL
renders the same ranks as a CASE expression for ORDER BY clauses.

ParsePriority, ParseSeverity, ParseIncidentStatus and ParseSosStatus
return an apierr Validation error that names the accepted values, so
request validation and query filters share one message.

# Domain Types

EmergencyContact, HealthCheck, Incident, Activity and SosAlert mirror
their table columns. Nullable columns are pointers so they serialize as
JSON null. User carries the password hash but never serializes it.
*/
package models
