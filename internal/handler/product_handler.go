package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hieptb/storefront/internal/domain"
	"github.com/hieptb/storefront/internal/handler/middleware"
	"github.com/hieptb/storefront/internal/usecase"
)

// photosFormField はmultipartフォーム内の画像ファイルのフィールド名です。
const photosFormField = "photos"

type ProductResponse struct {
	Success bool            `json:"success"`
	Product *domain.Product `json:"product"`
}

type ProductsResponse struct {
	Success  bool             `json:"success"`
	Products []domain.Product `json:"products"`
}

type CategoriesResponse struct {
	Success    bool     `json:"success"`
	Categories []string `json:"categories"`
}

type SearchProductsResponse struct {
	Success   bool             `json:"success"`
	Products  []domain.Product `json:"products"`
	TotalPage int              `json:"totalPage"`
}

type ProductHandler struct {
	catalog *usecase.CatalogUseCase
}

func NewProductHandler(catalog *usecase.CatalogUseCase) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
	}
}

// Create はmultipartフォームから商品を登録します。画像は1枚以上5枚以下です。
func (h *ProductHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	price, err := formInt(c, "price")
	if err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "price must be a number", err)
	}
	stock, err := formInt(c, "stock")
	if err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "stock must be a number", err)
	}

	images, closeImages, err := openImages(c)
	if err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "invalid multipart form", err)
	}
	defer closeImages()

	product, err := h.catalog.Create(ctx, usecase.CreateProductInput{
		Name:        c.FormValue("name"),
		Category:    c.FormValue("category"),
		Price:       price,
		Stock:       stock,
		Description: c.FormValue("description"),
	}, images)
	if err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusCreated, ProductResponse{Success: true, Product: product})
}

func (h *ProductHandler) Latest(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.catalog.Latest(ctx)
	if err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusOK, ProductsResponse{Success: true, Products: products})
}

func (h *ProductHandler) Categories(c echo.Context) error {
	ctx := c.Request().Context()

	categories, err := h.catalog.Categories(ctx)
	if err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusOK, CategoriesResponse{Success: true, Categories: categories})
}

// Search は検索・絞り込み・並べ替え・ページングを組み合わせた商品一覧を返します。
func (h *ProductHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()

	maxPrice, err := queryInt(c, "price")
	if err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "price must be a number", err)
	}
	page, err := queryInt(c, "page")
	if err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "page must be a number", err)
	}

	query, err := domain.NewCatalogQuery(
		c.QueryParam("search"),
		c.QueryParam("sort"),
		c.QueryParam("category"),
		maxPrice,
		int(page),
	)
	if err != nil {
		return toAppError(err)
	}

	result, err := h.catalog.Search(ctx, query)
	if err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusOK, SearchProductsResponse{
		Success:   true,
		Products:  result.Products,
		TotalPage: result.TotalPages,
	})
}

func (h *ProductHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.catalog.Get(ctx, c.Param("id"))
	if err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusOK, ProductResponse{Success: true, Product: &product})
}

// Update は送信されたフィールドのみを更新します。画像が添付された場合は
// 既存画像をすべて置き換えます。
func (h *ProductHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	var input usecase.UpdateProductInput
	if v := c.FormValue("name"); v != "" {
		input.Name = &v
	}
	if v := c.FormValue("category"); v != "" {
		input.Category = &v
	}
	if v := c.FormValue("description"); v != "" {
		input.Description = &v
	}
	if v := c.FormValue("price"); v != "" {
		price, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return middleware.NewAppError(http.StatusBadRequest, "price must be a number", err)
		}
		input.Price = &price
	}
	if v := c.FormValue("stock"); v != "" {
		stock, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return middleware.NewAppError(http.StatusBadRequest, "stock must be a number", err)
		}
		input.Stock = &stock
	}

	images, closeImages, err := openImages(c)
	if err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "invalid multipart form", err)
	}
	defer closeImages()

	product, err := h.catalog.Update(ctx, c.Param("id"), input, images)
	if err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusOK, ProductResponse{Success: true, Product: product})
}

func (h *ProductHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.catalog.Delete(ctx, c.Param("id")); err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "product deleted successfully"})
}

// openImages はmultipartフォームから画像ファイルを開きます。
// 返されるクローザーはレスポンス送信後に必ず呼び出してください。
// フォームが画像を含まない場合は空のスライスを返します。
func openImages(c echo.Context) ([]usecase.ImageUpload, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		if err == http.ErrNotMultipart || err == http.ErrMissingBoundary {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}

	headers := form.File[photosFormField]
	images := make([]usecase.ImageUpload, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		opened = append(opened, file)
		images = append(images, usecase.ImageUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get(echo.HeaderContentType),
			Size:        header.Size,
			Body:        file,
		})
	}

	return images, closeAll, nil
}

func formInt(c echo.Context, name string) (int64, error) {
	v := c.FormValue(name)
	if v == "" {
		return 0, nil
	}
	return strconv.ParseInt(v, 10, 64)
}

func queryInt(c echo.Context, name string) (int64, error) {
	v := c.QueryParam(name)
	if v == "" {
		return 0, nil
	}
	return strconv.ParseInt(v, 10, 64)
}
