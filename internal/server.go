package internal

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	applog "github.com/Srijit0/tinylink/internal/logger"
)

// createRetries bounds how often a create re-enters allocation after
// losing an insert race on an auto-generated code.
const createRetries = 3

// Server holds the handler dependencies. All mutable state lives in
// the LinkStore; the cache only mirrors immutable target URLs.
type Server struct {
	store   LinkStore
	cache   *TargetCache
	alloc   *Allocator
	baseURL string
}

func NewServer(store LinkStore, cache *TargetCache, baseURL string) *Server {
	return &Server{
		store:   store,
		cache:   cache,
		alloc:   NewAllocator(store),
		baseURL: baseURL,
	}
}

// App builds the Fiber app with all routes. The redirect route is
// registered last so /api paths never match as codes.
func (s *Server) App() *fiber.App {
	app := fiber.New()
	app.Use(applog.FiberMiddleware())
	app.Use(cors.New())

	app.Post("/api/links", s.handleCreate)
	app.Get("/api/links", s.handleList)
	app.Get("/api/links/:code", s.handleGet)
	app.Delete("/api/links/:code", s.handleDelete)
	app.Get("/:code", s.handleRedirect)

	return app
}

type createRequest struct {
	TargetURL string `json:"targetUrl"`
	Code      string `json:"code"`
}

type createResponse struct {
	Link
	ShortURL string `json:"shortUrl"`
}

func (s *Server) handleCreate(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if !ValidURL(req.TargetURL) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid or missing targetUrl. Must be http or https URL."})
	}
	if req.Code != "" && !ValidCode(req.Code) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid code. Must match [A-Za-z0-9]{6,8}."})
	}

	link, err := s.createLink(c, &req)
	if errors.Is(err, ErrCodeTaken) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Code already exists."})
	}
	if err != nil {
		slog.Error("create link failed", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error."})
	}

	return c.Status(fiber.StatusCreated).JSON(createResponse{
		Link:     *link,
		ShortURL: fmt.Sprintf("%s/%s", s.baseURL, link.Code),
	})
}

// createLink inserts with the caller's code, or allocates one. A
// conflict on a custom code is surfaced; a conflict on a generated
// code means another request won the insert race after the free-check,
// so allocation is retried.
func (s *Server) createLink(c *fiber.Ctx, req *createRequest) (*Link, error) {
	ctx := c.Context()

	if req.Code != "" {
		link := &Link{Code: req.Code, TargetURL: req.TargetURL}
		if err := s.store.Create(ctx, link); err != nil {
			return nil, err
		}
		return link, nil
	}

	for attempt := 0; attempt < createRetries; attempt++ {
		code, err := s.alloc.Allocate(ctx)
		if err != nil {
			return nil, err
		}
		link := &Link{Code: code, TargetURL: req.TargetURL}
		err = s.store.Create(ctx, link)
		if errors.Is(err, ErrCodeTaken) {
			slog.Warn("generated code lost insert race, retrying", "code", code)
			continue
		}
		if err != nil {
			return nil, err
		}
		return link, nil
	}
	return nil, ErrCodeSpaceExhausted
}

func (s *Server) handleList(c *fiber.Ctx) error {
	links, err := s.store.List(c.Context())
	if err != nil {
		slog.Error("list links failed", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error."})
	}
	return c.JSON(links)
}

func (s *Server) handleGet(c *fiber.Ctx) error {
	link, err := s.store.Get(c.Context(), c.Params("code"))
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Link not found."})
	}
	if err != nil {
		slog.Error("get link failed", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error."})
	}
	return c.JSON(link)
}

func (s *Server) handleDelete(c *fiber.Ctx) error {
	code := c.Params("code")
	err := s.store.Delete(c.Context(), code)
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Link not found."})
	}
	if err != nil {
		slog.Error("delete link failed", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error."})
	}
	s.cache.Evict(c.Context(), code)
	return c.SendStatus(fiber.StatusNoContent)
}

// handleRedirect resolves the code, accounts the click synchronously,
// then issues the 302. Accounting is not allowed to block navigation:
// only an increment not-found (row deleted after lookup) turns into a
// 404, any other increment failure is logged and the redirect is
// served anyway.
func (s *Server) handleRedirect(c *fiber.Ctx) error {
	code := c.Params("code")
	ctx := c.Context()

	target, ok := s.cache.Get(ctx, code)
	if !ok {
		link, err := s.store.Get(ctx, code)
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Short link not found."})
		}
		if err != nil {
			slog.Error("redirect lookup failed", "code", code, "err", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error."})
		}
		target = link.TargetURL
		s.cache.Set(ctx, code, target)
	}

	if err := s.store.IncrementClick(ctx, code); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.cache.Evict(ctx, code)
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Short link not found."})
		}
		slog.Error("click accounting failed", "code", code, "err", err)
	}

	return c.Redirect(target, fiber.StatusFound)
}
