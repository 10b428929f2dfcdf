package i18n

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// DefaultLocale 默认语言
const DefaultLocale = "en"

var supportedLocales = map[string]bool{
	"en": true,
	"es": true,
}

// ResolveLocale 从请求头解析语言
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	header := strings.TrimSpace(c.GetHeader("Accept-Language"))
	if header == "" {
		return DefaultLocale
	}
	for _, part := range strings.Split(header, ",") {
		tag := strings.ToLower(strings.TrimSpace(part))
		if idx := strings.Index(tag, ";"); idx >= 0 {
			tag = tag[:idx]
		}
		if idx := strings.Index(tag, "-"); idx >= 0 {
			tag = tag[:idx]
		}
		if supportedLocales[tag] {
			return tag
		}
	}
	return DefaultLocale
}

// T 返回指定语言的文案，不存在时回退到英文，再回退到 key 本身
func T(locale, key string) string {
	if messages, ok := catalog[locale]; ok {
		if msg, ok := messages[key]; ok {
			return msg
		}
	}
	if msg, ok := catalog[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

var catalog = map[string]map[string]string{
	"en": {
		"error.bad_request":              "invalid request",
		"error.internal":                 "internal server error",
		"error.not_found":                "resource not found",
		"error.unauthorized":             "unauthorized",
		"error.forbidden":                "forbidden",
		"error.auth_header_missing":      "authorization header missing",
		"error.auth_header_invalid":      "authorization header invalid",
		"error.token_invalid":            "invalid or expired token",
		"error.user_disabled":            "user account disabled",
		"error.login_failed":             "invalid email or password",
		"error.login_too_many":           "too many login attempts, try again later",
		"error.rate_limited":             "too many requests, try again later",
		"error.email_taken":              "email already registered",
		"error.captcha_invalid":          "captcha verification failed",
		"error.captcha_required":         "captcha is required",
		"error.email_invalid":            "email address is invalid",
		"error.password_too_weak":        "password does not meet strength requirements",
		"error.password_incorrect":       "current password is incorrect",
		"error.menu_item_not_available":  "menu item is not available",
		"error.cart_item_invalid":        "invalid cart item",
		"error.cart_restaurant_mismatch": "your cart contains items from another restaurant; clear it first",
		"error.cart_store_unavailable":   "cart temporarily unavailable, try again",
		"error.cart_empty":               "your cart is empty",
		"error.delivery_details_invalid": "delivery details are incomplete",
		"error.order_persist_failed":     "order could not be placed, your cart is unchanged",
		"error.order_not_found":          "order not found",
		"error.order_status_invalid":     "order status transition not allowed",
		"error.menu_item_not_found":      "menu item not found",
		"error.restaurant_not_found":     "restaurant not found",
		"error.upload_invalid":           "invalid upload",
		"error.upload_no_file":           "no file provided",
		"msg.cart_cleared":               "cart cleared",
		"msg.order_placed":               "order placed successfully",
	},
	"es": {
		"error.bad_request":              "solicitud inválida",
		"error.internal":                 "error interno del servidor",
		"error.not_found":                "recurso no encontrado",
		"error.unauthorized":             "no autorizado",
		"error.forbidden":                "prohibido",
		"error.auth_header_missing":      "falta el encabezado de autorización",
		"error.auth_header_invalid":      "encabezado de autorización inválido",
		"error.token_invalid":            "token inválido o expirado",
		"error.user_disabled":            "cuenta de usuario deshabilitada",
		"error.login_failed":             "correo o contraseña inválidos",
		"error.login_too_many":           "demasiados intentos de inicio de sesión, intenta más tarde",
		"error.rate_limited":             "demasiadas solicitudes, intenta más tarde",
		"error.email_taken":              "el correo ya está registrado",
		"error.captcha_invalid":          "falló la verificación del captcha",
		"error.captcha_required":         "se requiere captcha",
		"error.email_invalid":            "el correo es inválido",
		"error.password_too_weak":        "la contraseña no cumple los requisitos de seguridad",
		"error.password_incorrect":       "la contraseña actual es incorrecta",
		"error.menu_item_not_available":  "el item del menú no está disponible",
		"error.cart_item_invalid":        "item de carrito inválido",
		"error.cart_restaurant_mismatch": "tu carrito contiene items de otro restaurante; vacíalo primero",
		"error.cart_store_unavailable":   "carrito temporalmente no disponible, intenta de nuevo",
		"error.cart_empty":               "tu carrito está vacío",
		"error.delivery_details_invalid": "los datos de entrega están incompletos",
		"error.order_persist_failed":     "no se pudo crear la orden, tu carrito no cambió",
		"error.order_not_found":          "orden no encontrada",
		"error.order_status_invalid":     "transición de estado de orden no permitida",
		"error.menu_item_not_found":      "item del menú no encontrado",
		"error.restaurant_not_found":     "restaurante no encontrado",
		"error.upload_invalid":           "archivo inválido",
		"error.upload_no_file":           "no se proporcionó archivo",
		"msg.cart_cleared":               "carrito vaciado",
		"msg.order_placed":               "¡orden realizada con éxito!",
	},
}
