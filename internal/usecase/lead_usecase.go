package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"lexintake/internal/domain/entities"
	"lexintake/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingContactField = errors.New("missing required contact field")
	ErrInvalidLeadID       = errors.New("invalid lead id")
	ErrLeadNotFound        = errors.New("lead not found")
	ErrForbidden           = errors.New("role not allowed to perform this action")
	ErrNoArchivedLeads     = errors.New("no archived leads to purge")
	ErrAttachmentUpload    = errors.New("attachment upload failed")
	ErrInvalidListQuery    = errors.New("invalid list query")
)

// AttachmentInput is one file accompanying a public submission.

type AttachmentInput struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// NewLeadInput carries the public form fields for a submission.

type NewLeadInput struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	City            string
	IsCommercial    bool
	EstimatedDamage float64
	InjurySeverity  float64
}

// ILeadUseCase is the lead lifecycle controller.
//
// Lifecycle: active -> archived -> deleted, with unarchive allowed.
// Archiving is open to any staff role; deletion (single or bulk purge of
// archived) is admin only. Every mutating operation consults
// Role.Allows before touching storage, so a rejected actor never changes
// visible state.

type ILeadUseCase interface {
	Submit(ctx context.Context, in NewLeadInput, attachments []AttachmentInput) (entities.Lead, error)
	List(ctx context.Context, view entities.LeadView, orderBy entities.LeadOrderBy, direction entities.SortDirection) ([]entities.Lead, error)
	Archive(ctx context.Context, actor entities.Role, id string) (entities.Lead, error)
	Unarchive(ctx context.Context, actor entities.Role, id string) (entities.Lead, error)
	Delete(ctx context.Context, actor entities.Role, id string) error
	PurgeArchived(ctx context.Context, actor entities.Role) (int, error)
}

type LeadUseCase struct {
	repo  interfaces.ILeadRepository
	store interfaces.IAttachmentStore
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository, store interfaces.IAttachmentStore) *LeadUseCase {
	return &LeadUseCase{repo: repo, store: store}
}

// Submit uploads every attachment, then persists the lead with its estimate
// snapshot. Any upload failure aborts the whole submission: no row is
// created and already-stored objects are removed best-effort.
func (u *LeadUseCase) Submit(ctx context.Context, in NewLeadInput, attachments []AttachmentInput) (entities.Lead, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.City = strings.TrimSpace(in.City)
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Phone == "" || in.City == "" {
		return entities.Lead{}, ErrMissingContactField
	}

	id := uuid.NewString()

	mediaURLs := make([]string, 0, len(attachments))
	for i, att := range attachments {
		key := attachmentKey(id, i, att.FileName)
		stored, err := u.store.Put(ctx, key, att.Body, att.Size, att.ContentType)
		if err != nil {
			log.Printf("[lead][usecase] attachment upload failed lead_id=%s key=%s err=%v", id, key, err)
			u.removeAttachments(ctx, id, mediaURLs)
			return entities.Lead{}, fmt.Errorf("%w: %v", ErrAttachmentUpload, err)
		}
		mediaURLs = append(mediaURLs, stored)
	}

	estimate := entities.CalculateEstimate(in.EstimatedDamage, in.InjurySeverity, in.IsCommercial)

	l := entities.Lead{
		ID:              id,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           in.Email,
		Phone:           in.Phone,
		City:            in.City,
		IsCommercial:    in.IsCommercial,
		EstimatedDamage: in.EstimatedDamage,
		InjurySeverity:  in.InjurySeverity,
		EstimateRange:   estimate.Display,
		IsArchived:      false,
		MediaURLs:       mediaURLs,
		CreatedAt:       time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, l)
	if err != nil {
		u.removeAttachments(ctx, id, mediaURLs)
		return entities.Lead{}, err
	}
	log.Printf("[lead][usecase] submitted lead_id=%s city=%s attachments=%d", created.ID, created.City, len(mediaURLs))
	return created, nil
}

func (u *LeadUseCase) List(ctx context.Context, view entities.LeadView, orderBy entities.LeadOrderBy, direction entities.SortDirection) ([]entities.Lead, error) {
	leads, err := u.repo.List(ctx, orderBy, direction)
	if err != nil {
		return nil, err
	}
	if view == entities.ViewAll {
		return leads, nil
	}

	filtered := make([]entities.Lead, 0, len(leads))
	for _, l := range leads {
		if l.IsArchived == (view == entities.ViewArchived) {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}

func (u *LeadUseCase) Archive(ctx context.Context, actor entities.Role, id string) (entities.Lead, error) {
	return u.setArchived(ctx, actor, entities.ActionArchiveLead, id, true)
}

func (u *LeadUseCase) Unarchive(ctx context.Context, actor entities.Role, id string) (entities.Lead, error) {
	return u.setArchived(ctx, actor, entities.ActionUnarchiveLead, id, false)
}

func (u *LeadUseCase) setArchived(ctx context.Context, actor entities.Role, action entities.Action, id string, archived bool) (entities.Lead, error) {
	if !actor.Allows(action) {
		return entities.Lead{}, ErrForbidden
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	updated, err := u.repo.SetArchived(ctx, id, archived)
	if err != nil {
		return entities.Lead{}, err
	}
	if updated.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return updated, nil
}

// Delete removes the row and then every attachment it referenced.
// Attachment removal is best-effort: failures are logged and the delete
// still counts as successful (orphaned blobs are accepted).
func (u *LeadUseCase) Delete(ctx context.Context, actor entities.Role, id string) error {
	if !actor.Allows(entities.ActionDeleteLead) {
		return ErrForbidden
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidLeadID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted.ID == "" {
		return ErrLeadNotFound
	}

	u.removeAttachments(ctx, deleted.ID, deleted.MediaURLs)
	log.Printf("[lead][usecase] deleted lead_id=%s attachments=%d", deleted.ID, len(deleted.MediaURLs))
	return nil
}

// PurgeArchived deletes every archived lead, attachments included. It is a
// convenience layered on single-delete semantics, not a separate path: each
// record goes through the same row-then-attachments removal.
func (u *LeadUseCase) PurgeArchived(ctx context.Context, actor entities.Role) (int, error) {
	if !actor.Allows(entities.ActionPurgeArchived) {
		return 0, ErrForbidden
	}

	leads, err := u.repo.List(ctx, entities.OrderByCreatedAt, entities.SortAsc)
	if err != nil {
		return 0, err
	}

	archived := make([]entities.Lead, 0, len(leads))
	for _, l := range leads {
		if l.IsArchived {
			archived = append(archived, l)
		}
	}
	if len(archived) == 0 {
		return 0, ErrNoArchivedLeads
	}

	purged := 0
	for _, l := range archived {
		deleted, err := u.repo.Delete(ctx, l.ID)
		if err != nil {
			return purged, err
		}
		if deleted.ID == "" {
			// Raced with another session; already gone.
			continue
		}
		u.removeAttachments(ctx, deleted.ID, deleted.MediaURLs)
		purged++
	}
	log.Printf("[lead][usecase] purged archived leads count=%d", purged)
	return purged, nil
}

func (u *LeadUseCase) removeAttachments(ctx context.Context, leadID string, keys []string) {
	for _, key := range keys {
		if err := u.store.Remove(ctx, key); err != nil {
			log.Printf("[lead][usecase] attachment cleanup failed lead_id=%s key=%s err=%v", leadID, key, err)
		}
	}
}

// attachmentKey builds the object key for the i-th attachment of a lead.
func attachmentKey(leadID string, i int, fileName string) string {
	return fmt.Sprintf("leads/%s/%d-%s", leadID, i, sanitizeFileName(fileName))
}

func sanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "attachment"
	}
	// Keep the base name only and strip characters that complicate keys.
	if idx := strings.LastIndexAny(name, "/\\"); idx >= 0 {
		name = name[idx+1:]
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
