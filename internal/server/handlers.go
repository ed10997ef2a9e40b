package server

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	errorslib "github.com/goliatone/go-errors"

	"github.com/goliatone/go-resume/pkg/export"
	"github.com/goliatone/go-resume/pkg/model"
	"github.com/goliatone/go-resume/pkg/preview"
	"github.com/goliatone/go-resume/pkg/schema"
	"github.com/goliatone/go-resume/pkg/validation"
)

func (s *Server) handleForm(c *fiber.Ctx) error {
	stylesheet, err := preview.Stylesheet()
	if err != nil {
		return err
	}
	fragment, err := preview.Fragment(s.view.Tree())
	if err != nil {
		return err
	}

	var data pageData
	s.locked(func() {
		data = pageData{
			Title:      preview.Title(s.view.Tree()),
			Stylesheet: stylesheet,
			Preview:    fragment,
			Sections:   buildSections(s.ctrl),
			ErrorCount: len(s.ctrl.Errors()),
			Exporting:  s.bridge.InFlight(),
		}
	})

	out, err := s.pages.Render("form", data)
	if err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.SendString(out)
}

func (s *Server) handlePreview(c *fiber.Ctx) error {
	tree := s.view.Snapshot()
	page, err := preview.Page(tree, preview.PageData{Title: preview.Title(tree)})
	if err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(page)
}

type documentResponse struct {
	Document model.Document    `json:"document"`
	Errors   validation.Errors `json:"errors"`
	Valid    bool              `json:"valid"`
	Sections any               `json:"sections"`
}

func (s *Server) handleDocument(c *fiber.Ctx) error {
	var resp documentResponse
	s.locked(func() {
		errs := s.ctrl.Errors()
		resp = documentResponse{
			Document: s.ctrl.Document(),
			Errors:   errs,
			Valid:    errs.Valid(),
			Sections: s.ctrl.Sections(),
		}
	})
	return c.JSON(resp)
}

func (s *Server) handleSchema(c *fiber.Ctx) error {
	format := schema.FormatJSON
	if raw := c.Query("format"); raw != "" {
		parsed, err := schema.ParseFormat(raw)
		if err != nil {
			return errorslib.New(err.Error(), errorslib.CategoryBadInput).
				WithCode(fiber.StatusBadRequest).
				WithTextCode("bad_format")
		}
		format = parsed
	}
	data, err := schema.MarshalOpenAPI(format)
	if err != nil {
		return err
	}
	if format == schema.FormatYAML {
		c.Set(fiber.HeaderContentType, "application/yaml")
	} else {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	}
	return c.Send(data)
}

func (s *Server) handleSetField(c *fiber.Ctx) error {
	path := strings.TrimSpace(c.FormValue("path"))
	value := c.FormValue("value")

	var ok bool
	s.locked(func() {
		ok = s.ctrl.SetField(path, value)
	})
	return s.respond(c, ok)
}

// handleSubmitDocument applies every posted field whose value changed, each
// as its own edit.
func (s *Server) handleSubmitDocument(c *fiber.Ctx) error {
	posted := map[string]string{}
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		posted[string(key)] = string(value)
	})
	paths := make([]string, 0, len(posted))
	for path := range posted {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	applied := 0
	s.locked(func() {
		for _, path := range paths {
			current, ok := s.ctrl.Value(path)
			if !ok {
				continue
			}
			if str, isString := current.(string); !isString || str == posted[path] {
				continue
			}
			if s.ctrl.SetField(path, posted[path]) {
				applied++
			}
		}
	})
	s.logger.Debugf("server: applied %d of %d posted fields", applied, len(paths))
	return s.respond(c, true)
}

func (s *Server) handleAppend(c *fiber.Ctx) error {
	path := c.Params("path")
	var ok bool
	s.locked(func() {
		ok = s.ctrl.AppendBlank(path)
	})
	return s.respond(c, ok)
}

func (s *Server) handleRemove(c *fiber.Ctx) error {
	path := c.Params("path")
	index, err := c.ParamsInt("index")
	if err != nil {
		s.logger.Debugf("server: remove %q ignored: bad index %q", path, c.Params("index"))
		return s.respond(c, false)
	}
	var ok bool
	s.locked(func() {
		ok = s.ctrl.Remove(path, index)
	})
	return s.respond(c, ok)
}

func (s *Server) handleToggle(c *fiber.Ctx) error {
	section, ok := model.ParseSection(c.Params("section"))
	if !ok {
		return errorslib.New("unknown section "+c.Params("section"), errorslib.CategoryNotFound).
			WithCode(fiber.StatusNotFound).
			WithTextCode("unknown_section")
	}
	s.locked(func() {
		s.ctrl.ToggleSection(section)
	})
	return s.respond(c, true)
}

// handleExport runs outside the mutation lock so edits keep flowing while
// the engine works on its snapshot.
func (s *Server) handleExport(c *fiber.Ctx) error {
	result, err := s.bridge.ExportToFile(c.UserContext())
	if err != nil {
		return err
	}
	data, err := os.ReadFile(result.Path)
	if err != nil {
		return export.NewError(export.KindInternal, "read exported file", err)
	}
	c.Set("X-Export-ID", result.ID)
	c.Attachment(filepath.Base(result.Path))
	return c.Send(data)
}

type mutationResponse struct {
	OK     bool              `json:"ok"`
	Errors validation.Errors `json:"errors"`
}

// respond answers JSON clients with the outcome and redirects browsers back
// to the form.
func (s *Server) respond(c *fiber.Ctx, ok bool) error {
	if !wantsJSON(c) {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	var errs validation.Errors
	s.locked(func() {
		errs = s.ctrl.Errors()
	})
	return c.JSON(mutationResponse{OK: ok, Errors: errs})
}

func wantsJSON(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON)
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	mapped := toGoError(err)
	if mapped.Code >= fiber.StatusInternalServerError {
		s.logger.Errorf("server: %s %s: %v", c.Method(), c.Path(), err)
	}
	resp := mapped.ToErrorResponse(false, nil)
	resp.Error.Location = nil
	return c.Status(mapped.Code).JSON(resp)
}

func toGoError(err error) *errorslib.Error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return errorslib.New(fiberErr.Message, errorslib.HTTPStatusToCategory(fiberErr.Code)).
			WithCode(fiberErr.Code).
			WithTextCode(errorslib.HTTPStatusToTextCode(fiberErr.Code))
	}

	mapped := export.AsGoError(err)
	if mapped.Code != 0 {
		return mapped
	}
	switch mapped.Category {
	case errorslib.CategoryConflict:
		mapped.Code = fiber.StatusConflict
	case errorslib.CategoryValidation, errorslib.CategoryBadInput:
		mapped.Code = fiber.StatusBadRequest
	case errorslib.CategoryNotFound:
		mapped.Code = fiber.StatusNotFound
	default:
		mapped.Code = fiber.StatusInternalServerError
	}
	return mapped
}
