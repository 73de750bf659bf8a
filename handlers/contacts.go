// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/raahsetu/raah-setu/apierr"
	"github.com/raahsetu/raah-setu/db"
	"github.com/raahsetu/raah-setu/models"
)

const msgContactNotFound = "contact not found"

type ContactHandler struct {
	provider db.Provider
}

func NewContactHandler(provider db.Provider) *ContactHandler {
	return &ContactHandler{provider: provider}
}

// List handles GET /api/emergency-contacts?user_id=
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		respond(w, r, 0, nil, err)
		return
	}

	contacts, err := h.list(r.Context(), userID)
	respond(w, r, http.StatusOK, models.ContactsResponse{Contacts: contacts}, err)
}

// list orders by priority rank, highest first, then by creation order.
func (h *ContactHandler) list(ctx context.Context, userID int64) ([]models.EmergencyContact, error) {
	contacts := []models.EmergencyContact{}

	err := withSession(ctx, h.provider, func(sess *db.Session) error {
		rows, err := sess.Query(ctx, `
			SELECT id, name, phone, relationship, priority, email
			FROM emergency_contacts
			WHERE user_id = ?
			ORDER BY `+models.PriorityOrderSQL+` DESC, id ASC
		`, userID)
		if err != nil {
			return apierr.Internal(err)
		}
		defer rows.Close()

		for rows.Next() {
			var c models.EmergencyContact
			var relationship, priority, email sql.NullString
			if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &relationship, &priority, &email); err != nil {
				return apierr.Internal(err)
			}
			c.Relationship = stringPtr(relationship)
			c.Priority = models.Priority(priority.String)
			c.Email = stringPtr(email)
			contacts = append(contacts, c)
		}
		if err := rows.Err(); err != nil {
			return apierr.Internal(err)
		}
		return nil
	})

	return contacts, err
}

// Create handles POST /api/emergency-contacts
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateContactRequest
	if err := decode(r, &req); err != nil {
		respond(w, r, 0, nil, err)
		return
	}
	req.ApplyDefaults()

	resp, err := h.create(r.Context(), req)
	respond(w, r, http.StatusCreated, resp, err)
}

func (h *ContactHandler) create(ctx context.Context, req models.CreateContactRequest) (models.CreateContactResponse, error) {
	var id int64
	err := withSession(ctx, h.provider, func(sess *db.Session) error {
		var err error
		id, err = sess.Insert(ctx, `
			INSERT INTO emergency_contacts (user_id, name, phone, relationship, priority, email)
			VALUES (?, ?, ?, ?, ?, ?)
		`, req.UserID, req.Name, req.Phone, req.Relationship, string(req.Priority), nullable(req.Email))
		if err != nil {
			return insertError(err)
		}
		return nil
	})
	if err != nil {
		return models.CreateContactResponse{}, err
	}

	return models.CreateContactResponse{Message: models.MsgContactCreated, ContactID: id}, nil
}

// Update handles PUT /api/emergency-contacts/{id}
// Only fields present in the body change; absent or null fields keep
// their stored value.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respond(w, r, 0, nil, err)
		return
	}

	var req models.UpdateContactRequest
	if err := decode(r, &req); err != nil {
		respond(w, r, 0, nil, err)
		return
	}

	err = h.update(r.Context(), id, req)
	respond(w, r, http.StatusOK, models.MessageResponse{Message: models.MsgContactUpdated}, err)
}

func (h *ContactHandler) update(ctx context.Context, id int64, req models.UpdateContactRequest) error {
	var priority any
	if req.Priority != nil {
		priority = string(*req.Priority)
	}

	args := []any{nullable(req.Name), nullable(req.Phone), nullable(req.Relationship), priority}
	emailSet := "email = COALESCE(?, email)"
	if req.ClearsEmail() {
		emailSet = "email = NULL"
	} else {
		args = append(args, nullable(req.Email))
	}
	args = append(args, id)

	return withSession(ctx, h.provider, func(sess *db.Session) error {
		n, err := sess.ExecAffected(ctx, `
			UPDATE emergency_contacts
			SET name = COALESCE(?, name),
			    phone = COALESCE(?, phone),
			    relationship = COALESCE(?, relationship),
			    priority = COALESCE(?, priority),
			    `+emailSet+`,
			    updated_at = CURRENT_TIMESTAMP
			WHERE id = ?
		`, args...)
		if err != nil {
			return apierr.Internal(err)
		}
		if n == 0 {
			return apierr.NotFound(msgContactNotFound)
		}
		return nil
	})
}

// Delete handles DELETE /api/emergency-contacts/{id}
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respond(w, r, 0, nil, err)
		return
	}

	err = h.delete(r.Context(), id)
	respond(w, r, http.StatusOK, models.MessageResponse{Message: models.MsgContactDeleted}, err)
}

func (h *ContactHandler) delete(ctx context.Context, id int64) error {
	return withSession(ctx, h.provider, func(sess *db.Session) error {
		n, err := sess.ExecAffected(ctx, `DELETE FROM emergency_contacts WHERE id = ?`, id)
		if err != nil {
			return apierr.Internal(err)
		}
		if n == 0 {
			return apierr.NotFound(msgContactNotFound)
		}
		return nil
	})
}
