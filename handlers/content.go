package handlers

import (
	"bytes"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/ieee-swc/ClubBack/models"
	"github.com/ieee-swc/ClubBack/supabase"
	"github.com/ieee-swc/ClubBack/utils"
)

type ContentHandler struct {
	sb *supabase.Client
}

func NewContentHandler(sb *supabase.Client) *ContentHandler {
	return &ContentHandler{sb: sb}
}

func (h *ContentHandler) ListProjects(c *fiber.Ctx) error {
	projects, err := h.sb.ListProjects("")
	if err != nil {
		utils.Error("Project listing failed", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Could not load projects."})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"projects": projects})
}

// CreateProject takes a multipart form so an image can ride along. The image
// goes through the WebP pipeline into object storage; the row goes to the
// hosted backend.
func (h *ContentHandler) CreateProject(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	token, _ := c.Locals("access_token").(string)

	project := models.Project{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Content:     c.FormValue("content"),
		GithubURL:   c.FormValue("github_url"),
		Status:      c.FormValue("status", "planning"),
		CreatedBy:   userID,
	}
	if err := validate.Struct(project); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid project: " + err.Error()})
	}

	imageURL, err := h.uploadImage(c, "image", "project-")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	project.ImageURL = imageURL

	created, err := h.sb.CreateProject(token, project)
	if err != nil {
		utils.Error("Project insert failed", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Could not save the project."})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"project": created})
}

func (h *ContentHandler) ListResources(c *fiber.Ctx) error {
	resources, err := h.sb.ListResources("")
	if err != nil {
		utils.Error("Resource listing failed", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Could not load resources."})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"resources": resources})
}

func (h *ContentHandler) CreateResource(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	token, _ := c.Locals("access_token").(string)

	resource := models.Resource{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		URL:         c.FormValue("url"),
		Category:    c.FormValue("category", "other"),
		CreatedBy:   userID,
	}
	if err := validate.Struct(resource); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid resource: " + err.Error()})
	}

	fileURL, err := h.uploadFile(c, "file", "resource-")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	resource.FileURL = fileURL

	created, err := h.sb.CreateResource(token, resource)
	if err != nil {
		utils.Error("Resource insert failed", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Could not save the resource."})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"resource": created})
}

// uploadImage reads an optional multipart image field, converts it to WebP
// and stores it. Absent field is not an error; absent storage is.
func (h *ContentHandler) uploadImage(c *fiber.Ctx, field, prefix string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	buf, err := utils.ConvertToWebP(file, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	return utils.UploadObject(c.Context(), prefix, buf, "image/webp")
}

func (h *ContentHandler) uploadFile(c *fiber.Ctx, field, prefix string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, file); err != nil {
		return "", err
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return utils.UploadObject(c.Context(), prefix, buf, contentType)
}
