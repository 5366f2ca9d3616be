package service

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"custodyapi/internal/model"
	"custodyapi/internal/repository"
	"custodyapi/internal/storage"
)

var (
	ErrOwnerRequired      = errors.New("owner is required")
	ErrIDRequired         = errors.New("id is required")
	ErrContentRequired    = errors.New("content is required")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrDuplicateContent   = errors.New("document with identical content already exists")
	ErrPictureNotFound    = errors.New("document has no picture")
	ErrInvalidPictureSide = errors.New("picture side must be front or back")
	ErrIncompletePicture  = errors.New("picture requires both front and back")
)

// AddDocumentInput carries the client-supplied fields of a new document.
// The owner is never part of the input; it is injected server-side from the
// authenticated subject.
type AddDocumentInput struct {
	Title       string
	Description string
	Content     json.RawMessage
	IsCritical  bool
	Metadata    json.RawMessage
	Picture     *PictureUpload
}

// PictureUpload holds the raw bytes of the front/back scans of a document.
type PictureUpload struct {
	Front []byte
	Back  []byte
}

// DocumentService defines the use cases for custody of document records.
type DocumentService interface {
	// List returns summary projections of the owner's documents.
	List(ctx context.Context, owner string) ([]model.DocumentSummary, error)

	// Get returns the owner's document by id. Fetching a document is itself an
	// audited action: a backlog entry is recorded for every successful get.
	Get(ctx context.Context, owner, id string) (*model.Document, error)

	// Add creates a document and its initial lifecycle state (Stored).
	// Fails with ErrDuplicateContent if the owner already has a document with
	// an identical content payload.
	Add(ctx context.Context, owner string, in AddDocumentInput) (*model.Document, error)

	// Delete removes the document together with its state record, backlog
	// entries, and stored picture objects.
	Delete(ctx context.Context, owner, id string) error

	// OpenPicture streams one side ("front" or "back") of the document's
	// picture pair from object storage.
	OpenPicture(ctx context.Context, owner, id, side string) (io.ReadCloser, storage.ObjectInfo, error)
}

type documentService struct {
	store   storage.Storage
	docs    repository.DocumentRepository
	states  repository.StateRepository
	backlog repository.BacklogRepository
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, docs repository.DocumentRepository, states repository.StateRepository, backlog repository.BacklogRepository) DocumentService {
	return &documentService{store: store, docs: docs, states: states, backlog: backlog}
}

func (s *documentService) List(ctx context.Context, owner string) ([]model.DocumentSummary, error) {
	if owner == "" {
		return nil, ErrOwnerRequired
	}
	return s.docs.ListByOwner(ctx, owner)
}

func (s *documentService) Get(ctx context.Context, owner, id string) (*model.Document, error) {
	if owner == "" {
		return nil, ErrOwnerRequired
	}
	if id == "" {
		return nil, ErrIDRequired
	}

	doc, err := s.docs.FindByID(ctx, owner, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}

	entry := &model.BacklogEntry{
		ID:                  uuid.New().String(),
		DocumentRequestedID: doc.ID,
		Owner:               owner,
		TimeRequested:       time.Now().UTC(),
	}
	if _, err := s.backlog.Create(ctx, entry); err != nil {
		// The fetch is an audited action; an unrecorded read is a failed read.
		return nil, fmt.Errorf("record backlog entry: %w", err)
	}

	return doc, nil
}

func (s *documentService) Add(ctx context.Context, owner string, in AddDocumentInput) (*model.Document, error) {
	if owner == "" {
		return nil, ErrOwnerRequired
	}
	if len(in.Content) == 0 {
		return nil, ErrContentRequired
	}

	// Check-then-insert: two concurrent adds with identical content can both
	// pass this probe. Preserved from the source; see DESIGN.md.
	exists, err := s.docs.ExistsByContent(ctx, owner, in.Content)
	if err != nil {
		return nil, fmt.Errorf("check duplicate content: %w", err)
	}
	if exists {
		return nil, ErrDuplicateContent
	}

	docID := uuid.New().String()
	now := time.Now().UTC()

	pic, err := s.uploadPicture(ctx, docID, in.Picture)
	if err != nil {
		return nil, err
	}

	doc := &model.Document{
		ID:          docID,
		Title:       in.Title,
		Description: in.Description,
		Owner:       owner,
		Content:     in.Content,
		Picture:     pic,
		IsCritical:  in.IsCritical,
		Metadata:    in.Metadata,
		CreatedAt:   now,
	}
	stored, err := s.docs.Create(ctx, doc)
	if err != nil {
		s.deletePictureObjects(ctx, pic)
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	st := &model.DocumentState{
		ID:         uuid.New().String(),
		DocumentID: stored.ID,
		Owner:      owner,
		State:      model.StateStored,
		Time:       now,
	}
	if _, err := s.states.Create(ctx, st); err != nil {
		// Roll back the document so no stateless record survives.
		if delErr := s.docs.Delete(ctx, owner, stored.ID); delErr != nil {
			return nil, fmt.Errorf("seed document state failed: %v; rollback delete failed: %v", err, delErr)
		}
		s.deletePictureObjects(ctx, pic)
		return nil, fmt.Errorf("seed document state failed: %w", err)
	}

	return stored, nil
}

func (s *documentService) Delete(ctx context.Context, owner, id string) error {
	if owner == "" {
		return ErrOwnerRequired
	}
	if id == "" {
		return ErrIDRequired
	}

	doc, err := s.docs.FindByID(ctx, owner, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrDocumentNotFound
		}
		return err
	}

	// Cascade: picture objects, backlog, state, then the document itself.
	// Non-transactional; the document row goes last so a partial failure
	// leaves the delete retryable.
	if doc.Picture != nil {
		if err := s.store.Delete(ctx, doc.Picture.Front); err != nil {
			return fmt.Errorf("delete picture front: %w", err)
		}
		if err := s.store.Delete(ctx, doc.Picture.Back); err != nil {
			return fmt.Errorf("delete picture back: %w", err)
		}
	}
	if err := s.backlog.DeleteByDocumentID(ctx, owner, doc.ID); err != nil {
		return fmt.Errorf("delete backlog entries: %w", err)
	}
	if err := s.states.DeleteByDocumentID(ctx, owner, doc.ID); err != nil {
		return fmt.Errorf("delete document state: %w", err)
	}
	return s.docs.Delete(ctx, owner, doc.ID)
}

func (s *documentService) OpenPicture(ctx context.Context, owner, id, side string) (io.ReadCloser, storage.ObjectInfo, error) {
	if side != "front" && side != "back" {
		return nil, storage.ObjectInfo{}, ErrInvalidPictureSide
	}

	doc, err := s.docs.FindByID(ctx, owner, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ObjectInfo{}, ErrDocumentNotFound
		}
		return nil, storage.ObjectInfo{}, err
	}
	if doc.Picture == nil {
		return nil, storage.ObjectInfo{}, ErrPictureNotFound
	}

	key := doc.Picture.Front
	if side == "back" {
		key = doc.Picture.Back
	}
	return s.store.Get(ctx, key)
}

// uploadPicture stores both sides of the picture pair and returns their keys.
// On a back-side failure the already-uploaded front object is removed.
func (s *documentService) uploadPicture(ctx context.Context, docID string, up *PictureUpload) (*model.PicturePair, error) {
	if up == nil {
		return nil, nil
	}
	if len(up.Front) == 0 || len(up.Back) == 0 {
		return nil, ErrIncompletePicture
	}

	frontKey := fmt.Sprintf("pictures/%s-front", docID)
	backKey := fmt.Sprintf("pictures/%s-back", docID)
	opt := func(size int) storage.PutObjectOptions {
		return storage.PutObjectOptions{Size: int64(size), ContentType: "application/octet-stream"}
	}

	if _, err := s.store.Put(ctx, frontKey, bytes.NewReader(up.Front), opt(len(up.Front))); err != nil {
		return nil, fmt.Errorf("upload picture front: %w", err)
	}
	if _, err := s.store.Put(ctx, backKey, bytes.NewReader(up.Back), opt(len(up.Back))); err != nil {
		if delErr := s.store.Delete(ctx, frontKey); delErr != nil {
			return nil, fmt.Errorf("upload picture back: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("upload picture back: %w", err)
	}

	return &model.PicturePair{Front: frontKey, Back: backKey}, nil
}

func (s *documentService) deletePictureObjects(ctx context.Context, pic *model.PicturePair) {
	if pic == nil {
		return
	}
	_ = s.store.Delete(ctx, pic.Front)
	_ = s.store.Delete(ctx, pic.Back)
}
