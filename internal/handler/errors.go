// internal/handler/errors.go
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/gurkanbulca/taskboard/internal/service"
)

// bindJSON binds the request body and answers a structured 400 with a
// field-to-message mapping when validation fails.
func (h *Handler) bindJSON(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[jsonFieldName(fe.Field())] = validationMessage(fe)
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       "表单验证失败",
			"fieldErrors": fields,
		})
		return false
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
	return false
}

// error maps service errors onto the response taxonomy. Anything
// unrecognized is logged and hidden behind a generic 500.
func (h *Handler) error(c *gin.Context, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       "表单验证失败",
			"fieldErrors": verr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "资源不存在"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "没有权限执行此操作"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "邮箱或密码错误"})
	case errors.Is(err, service.ErrSelfDelete):
		c.JSON(http.StatusBadRequest, gin.H{"error": "不能删除自己的账户"})
	default:
		h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "服务器内部错误"})
	}
}

// jsonFieldName converts a Go struct field name to its JSON spelling.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	runes := []rune(field)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// validationMessage renders a binding failure as a user-facing message.
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "此字段为必填项"
	case "email":
		return "请输入有效的邮箱地址"
	case "min":
		return fmt.Sprintf("长度至少为%s", fe.Param())
	case "max":
		return fmt.Sprintf("长度不能超过%s", fe.Param())
	case "gt":
		return fmt.Sprintf("必须大于%s", fe.Param())
	case "oneof":
		return fmt.Sprintf("必须是以下值之一: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return "无效的值"
	}
}
