// Package http 提供订单服务的 HTTP 接口。
// 传输层校验（字段必填、价格格式与精度、枚举取值）在这里完成，
// 应用服务只负责业务前置条件。
package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/response"

	"github.com/wyfcoding/exchange/internal/order/application"
	"github.com/wyfcoding/exchange/internal/order/domain"
)

// 价格上限 10^5：最多 5 位整数、2 位小数
var maxPrice = decimal.New(1, 5)

// OrderHandler HTTP 处理器
type OrderHandler struct {
	svc *application.OrderService
}

// NewOrderHandler 创建 HTTP 处理器实例
func NewOrderHandler(svc *application.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// RegisterRoutes 注册路由
func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/orders")
	{
		api.POST("", h.CreateOrder)       // 创建订单
		api.GET("", h.SearchOrders)       // 检索用户订单
		api.GET("/:id", h.GetOrder)       // 获取订单详情
		api.DELETE("/:id", h.CancelOrder) // 取消订单
	}
}

// CreateOrderRequest 创建订单请求
type CreateOrderRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Asset  string `json:"asset" binding:"required"`
	Price  string `json:"price" binding:"required"`
	Type   string `json:"type" binding:"required"`
}

// CreateOrder 创建订单
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	orderType := domain.OrderType(req.Type)
	if !orderType.Valid() {
		response.ErrorWithStatus(c, http.StatusBadRequest, "type must be BUY or SELL", "")
		return
	}

	cmd := application.CreateOrderCommand{
		UserID: req.UserID,
		Asset:  req.Asset,
		Price:  price,
		Type:   orderType,
	}
	dto, err := h.svc.CreateOrder(c.Request.Context(), cmd)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/orders/%d", dto.ID))
	response.Success(c, dto)
}

// GetOrder 获取订单详情，已取消的订单与不存在的订单同样返回 404。
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}

	dto, err := h.svc.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, dto)
}

// SearchOrders 检索用户订单。
// status 缺省时排除 CANCELLED；sort 形如 "timestamp,asc"，可重复。
func (h *OrderHandler) SearchOrders(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "user_id is required", "")
		return
	}

	var status domain.OrderStatus
	if raw := c.Query("status"); raw != "" {
		status = domain.OrderStatus(raw)
		if !status.Valid() {
			response.ErrorWithStatus(c, http.StatusBadRequest, "status must be NEW, COMPLETED or CANCELLED", "")
			return
		}
	}

	pageNum, err := intQuery(c, "page", 0)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid page", "")
		return
	}
	size, err := intQuery(c, "size", 20)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid size", "")
		return
	}

	sort, err := parseSort(c.QueryArray("sort"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	query := application.SearchOrdersQuery{
		UserID: uint(userID),
		Status: status,
		Page: domain.Page{
			Number: pageNum,
			Size:   size,
			Sort:   sort,
		},
	}
	dtos, total, err := h.svc.SearchOrders(c.Request.Context(), query)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, gin.H{
		"orders": dtos,
		"total":  total,
		"page":   pageNum,
		"size":   size,
	})
}

// CancelOrder 取消订单
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}

	if err := h.svc.CancelOrder(c.Request.Context(), orderID); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, gin.H{"status": "cancelled", "order_id": orderID})
}

// writeError 业务错误到状态码的映射；未识别的错误一律按存储故障处理。
func (h *OrderHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound), errors.Is(err, domain.ErrUserNotFound):
		response.ErrorWithStatus(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, domain.ErrAssetNotRecognized), errors.Is(err, domain.ErrOrderCancellation):
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
	default:
		logging.Error(c.Request.Context(), "order request failed", "path", c.FullPath(), "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
	}
}

func parseOrderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid order id", "")
		return 0, false
	}
	return uint(id), true
}

// parsePrice 价格必须为正，最多 5 位整数、2 位小数。
func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errors.New("price must be a decimal number")
	}
	if !price.IsPositive() {
		return decimal.Zero, errors.New("price must be greater than 0")
	}
	if !price.Equal(price.Round(2)) {
		return decimal.Zero, errors.New("price allows at most 2 fractional digits")
	}
	if !price.LessThan(maxPrice) {
		return decimal.Zero, errors.New("price allows at most 5 integer digits")
	}
	return price, nil
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return v, nil
}

// parseSort 解析 "property[,asc|desc]" 形式的排序键
func parseSort(raw []string) ([]domain.SortKey, error) {
	keys := make([]domain.SortKey, 0, len(raw))
	for _, item := range raw {
		parts := strings.Split(item, ",")
		key := domain.SortKey{Property: strings.TrimSpace(parts[0])}
		if key.Property == "" {
			return nil, errors.New("invalid sort key")
		}
		if len(parts) > 1 {
			switch strings.ToLower(strings.TrimSpace(parts[1])) {
			case "asc":
			case "desc":
				key.Desc = true
			default:
				return nil, errors.New("sort direction must be asc or desc")
			}
		}
		keys = append(keys, key)
	}
	return keys, nil
}
