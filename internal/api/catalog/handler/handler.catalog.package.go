package cataloghdl

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	catalogdto "github.com/prisweb123/neuto-backend/internal/api/catalog/dto"
	models "github.com/prisweb123/neuto-backend/internal/api/catalog/models"
	catalogsvc "github.com/prisweb123/neuto-backend/internal/api/catalog/service"
	basehdl "github.com/prisweb123/neuto-backend/internal/api/base/handler"
	"github.com/prisweb123/neuto-backend/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Chỉ chấp nhận ảnh jpg/jpeg/png, map theo extension của file upload
var allowedImageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// PackageHandler xử lý các request quản lý gói sản phẩm.
// Tạo/cập nhật gói dùng multipart form vì kèm file ảnh; ảnh được mã hóa
// thành data URI base64 và lưu thẳng trong document.
type PackageHandler struct {
	*basehdl.BaseHandler[models.Package, catalogdto.PackageCreateInput, catalogdto.PackageUpdateInput]
	packageService *catalogsvc.PackageService
}

// NewPackageHandler tạo instance mới của PackageHandler
func NewPackageHandler() (*PackageHandler, error) {
	packageService, err := catalogsvc.NewPackageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create package service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Package, catalogdto.PackageCreateInput, catalogdto.PackageUpdateInput](packageService)
	return &PackageHandler{
		BaseHandler:    baseHandler,
		packageService: packageService,
	}, nil
}

// readImageDataURI đọc file upload và mã hóa thành data URI base64
func readImageDataURI(fileHeader *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	mimeType, ok := allowedImageTypes[ext]
	if !ok {
		return "", common.NewError(common.ErrCodeValidationInput, "Please upload an image file (jpg, jpeg, png)", common.StatusBadRequest, nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", common.NewError(common.ErrCodeValidationInput, "Please upload an image", common.StatusBadRequest, err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err)
	}

	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(raw)), nil
}

// parseMarkeModels đọc danh sách cặp (marke, model) từ form.
// Ưu tiên field markeModels dạng JSON array; nếu không có thì nhận cặp
// marke/model đơn lẻ.
func parseMarkeModels(c fiber.Ctx) ([]models.MarkeModel, error) {
	raw := c.FormValue("markeModels")
	if raw != "" {
		var markeModels []models.MarkeModel
		if err := json.Unmarshal([]byte(raw), &markeModels); err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err)
		}
		return markeModels, nil
	}

	marke := c.FormValue("marke")
	model := c.FormValue("model")
	if marke != "" || model != "" {
		return []models.MarkeModel{{Marke: marke, Model: model}}, nil
	}
	return nil, nil
}

// parseStringList đọc field dạng danh sách từ form: một giá trị JSON array
// hoặc field lặp lại nhiều lần.
func parseStringList(c fiber.Ctx, field string) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, nil
	}
	values := form.Value[field]
	if len(values) == 0 {
		return nil, nil
	}
	if len(values) == 1 && strings.HasPrefix(strings.TrimSpace(values[0]), "[") {
		var list []string
		if err := json.Unmarshal([]byte(values[0]), &list); err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err)
		}
		return list, nil
	}
	return values, nil
}

// parseEndDate nhận Unix milli hoặc chuỗi RFC3339
func parseEndDate(raw string) (int64, error) {
	if raw == "" {
		return time.Now().UnixMilli(), nil
	}
	if millis, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return millis, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return 0, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err)
	}
	return parsed.UnixMilli(), nil
}

// HandleCreate tạo gói mới từ multipart form, ảnh là bắt buộc (chỉ admin)
func (h *PackageHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		fileHeader, err := c.FormFile("image")
		if err != nil || fileHeader == nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Please upload an image", common.StatusBadRequest, nil))
			return nil
		}
		image, err := readImageDataURI(fileHeader)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		markeModels, err := parseMarkeModels(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		include, err := parseStringList(c, "include")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		endDate, err := parseEndDate(c.FormValue("endDate"))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		discount, _ := strconv.ParseFloat(c.FormValue("discount"), 64)
		price, err := strconv.ParseFloat(c.FormValue("price"), 64)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err))
			return nil
		}

		input := catalogdto.PackageCreateInput{
			Name:        c.FormValue("name"),
			Description: c.FormValue("description"),
			MarkeModels: markeModels,
			Discount:    discount,
			Price:       price,
			EndDate:     endDate,
			Image:       image,
			Include:     include,
			Info:        c.FormValue("info"),
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		pkg, err := h.packageService.Create(c.Context(), &input)
		h.HandleResponseWithMessage(c, common.StatusCreated, "Package created successfully", pkg, err)
		return nil
	})
}

// HandleGetPackages lấy toàn bộ gói, mới tạo trước
func (h *PackageHandler) HandleGetPackages(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		packages, err := h.packageService.Find(c.Context(), nil, opts)
		h.HandleListResponse(c, common.MsgSuccess, packages, err)
		return nil
	})
}

// HandleGetPackage lấy một gói theo id
func (h *PackageHandler) HandleGetPackage(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		pkg, err := h.packageService.FindOneById(c.Context(), objID)
		if errors.Is(err, common.ErrNotFound) {
			err = common.NewError(common.ErrCodeDatabaseQuery, "Package not found", common.StatusNotFound, nil)
		}
		h.HandleResponse(c, pkg, err)
		return nil
	})
}

// HandleUpdate cập nhật gói từ multipart form, ảnh mới là tùy chọn (chỉ admin)
func (h *PackageHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := catalogdto.PackageUpdateInput{
			Name:        c.FormValue("name"),
			Description: c.FormValue("description"),
			Info:        c.FormValue("info"),
		}

		if fileHeader, err := c.FormFile("image"); err == nil && fileHeader != nil {
			image, err := readImageDataURI(fileHeader)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			input.Image = image
		}

		markeModels, err := parseMarkeModels(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		input.MarkeModels = markeModels

		include, err := parseStringList(c, "include")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		input.Include = include

		if raw := c.FormValue("endDate"); raw != "" {
			endDate, err := parseEndDate(raw)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			input.EndDate = &endDate
		}
		if raw := c.FormValue("discount"); raw != "" {
			discount, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err))
				return nil
			}
			input.Discount = &discount
		}
		if raw := c.FormValue("price"); raw != "" {
			price, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err))
				return nil
			}
			input.Price = &price
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		pkg, err := h.packageService.Update(c.Context(), objID, &input)
		h.HandleResponseWithMessage(c, common.StatusOK, "Package updated successfully", pkg, err)
		return nil
	})
}

// HandleDelete xóa gói (chỉ admin)
func (h *PackageHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		err = h.packageService.DeleteById(c.Context(), objID)
		if errors.Is(err, common.ErrNotFound) {
			err = common.NewError(common.ErrCodeDatabaseQuery, "Package not found", common.StatusNotFound, nil)
		}
		h.HandleResponseWithMessage(c, common.StatusOK, "Varen/Tjenesten er slettet!", nil, err)
		return nil
	})
}
