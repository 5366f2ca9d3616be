package handler

import (
	"encoding/base64"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"custodyapi/internal/service"
)

// addDocumentRequest is the POST /document/add body. Content and metadata are
// opaque JSON payloads; picture sides are base64-encoded binary scans.
type addDocumentRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Content     json.RawMessage `json:"content"`
	IsCritical  bool            `json:"is_critical"`
	Metadata    json.RawMessage `json:"metadata"`
	Picture     *pictureRequest `json:"picture"`
}

type pictureRequest struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// ListDocuments returns summary projections of the caller's documents.
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := ownerFromCtx(c)
		if err != nil {
			return err
		}

		res, err := svc.List(c.UserContext(), owner)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}
		return c.JSON(res)
	}
}

// GetDocument returns the full document. A successful fetch is itself
// recorded in the backlog by the service layer.
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := ownerFromCtx(c)
		if err != nil {
			return err
		}

		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid id format")
		}

		doc, err := svc.Get(c.UserContext(), owner, id)
		if err != nil {
			if errors.Is(err, service.ErrDocumentNotFound) {
				return writeError(c, fiber.StatusNotFound, "Document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}
		return c.JSON(doc)
	}
}

// AddDocument creates a document in custody together with its initial
// Stored state.
func AddDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := ownerFromCtx(c)
		if err != nil {
			return err
		}

		var req addDocumentRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}

		in := service.AddDocumentInput{
			Title:       req.Title,
			Description: req.Description,
			Content:     req.Content,
			IsCritical:  req.IsCritical,
			Metadata:    req.Metadata,
		}
		if req.Picture != nil {
			front, err := base64.StdEncoding.DecodeString(req.Picture.Front)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "picture front is not valid base64")
			}
			back, err := base64.StdEncoding.DecodeString(req.Picture.Back)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "picture back is not valid base64")
			}
			in.Picture = &service.PictureUpload{Front: front, Back: back}
		}

		doc, err := svc.Add(c.UserContext(), owner, in)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrDuplicateContent):
				return writeError(c, fiber.StatusBadRequest, "Document with this content already exists")
			case errors.Is(err, service.ErrContentRequired):
				return writeError(c, fiber.StatusBadRequest, "content is required")
			case errors.Is(err, service.ErrIncompletePicture):
				return writeError(c, fiber.StatusBadRequest, "picture requires both front and back")
			}
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Document added successfully",
			"id":      doc.ID,
		})
	}
}

// DeleteDocument removes the document with its state record, backlog entries
// and stored picture objects.
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := ownerFromCtx(c)
		if err != nil {
			return err
		}

		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid id format")
		}

		if err := svc.Delete(c.UserContext(), owner, id); err != nil {
			if errors.Is(err, service.ErrDocumentNotFound) {
				return writeError(c, fiber.StatusNotFound, "Document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Document deleted successfully"})
	}
}

// GetDocumentPicture streams one side of the document's picture pair.
func GetDocumentPicture(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := ownerFromCtx(c)
		if err != nil {
			return err
		}

		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid id format")
		}
		side := c.Params("side")

		rc, info, err := svc.OpenPicture(c.UserContext(), owner, id, side)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidPictureSide):
				return writeError(c, fiber.StatusBadRequest, "picture side must be front or back")
			case errors.Is(err, service.ErrDocumentNotFound):
				return writeError(c, fiber.StatusNotFound, "Document not found")
			case errors.Is(err, service.ErrPictureNotFound):
				return writeError(c, fiber.StatusNotFound, "Document has no picture")
			}
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}

		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		} else {
			c.Set(fiber.HeaderContentType, "application/octet-stream")
		}
		if info.Size > 0 {
			return c.SendStream(rc, int(info.Size))
		}
		return c.SendStream(rc)
	}
}
