package api

import (
	"errors"

	"github.com/caffe-pos/internal/http/response"
	"github.com/caffe-pos/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrEmptyOrderItems, code: response.CodeBadRequest, msg: "order must contain at least one item"},
	{target: service.ErrInvalidOrderItem, code: response.CodeBadRequest, msg: "order item quantity must be positive"},
	{target: service.ErrItemNotFound, code: response.CodeNotFound, msg: "one or more items do not exist"},
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, msg: "order not found"},
	{target: service.ErrOrderStatusInvalid, code: response.CodeBadRequest, msg: "unknown order status"},
}

var paymentErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, msg: "order not found"},
	{target: service.ErrPaymentNotFound, code: response.CodeNotFound, msg: "payment not found"},
	{target: service.ErrOrderAlreadyPaid, code: response.CodeConflict, msg: "order is already settled"},
	{target: service.ErrInsufficientPayment, code: response.CodeBadRequest, msg: "payment amount is less than amount due"},
}

var catalogErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "record not found"},
	{target: service.ErrNameExists, code: response.CodeConflict, msg: "name already in use"},
	{target: service.ErrCategoryInUse, code: response.CodeConflict, msg: "category still has items"},
	{target: service.ErrItemInUse, code: response.CodeConflict, msg: "item is referenced by orders"},
}

var accountErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "record not found"},
	{target: service.ErrUsernameExists, code: response.CodeConflict, msg: "username already in use"},
	{target: service.ErrNameExists, code: response.CodeConflict, msg: "name already in use"},
	{target: service.ErrRoleNotFound, code: response.CodeNotFound, msg: "role not found"},
	{target: service.ErrRoleInUse, code: response.CodeConflict, msg: "role is assigned to users"},
	{target: service.ErrPermissionNotFound, code: response.CodeNotFound, msg: "permission not found"},
	{target: service.ErrPermissionInUse, code: response.CodeConflict, msg: "permission is granted to roles"},
	{target: service.ErrRolePermissionExists, code: response.CodeConflict, msg: "permission already granted"},
	{target: service.ErrRolePermissionNotFound, code: response.CodeNotFound, msg: "grant not found"},
	{target: service.ErrWeakPassword, code: response.CodeBadRequest, msg: "password does not meet policy"},
	{target: service.ErrInvalidPassword, code: response.CodeBadRequest, msg: "current password incorrect"},
}
