package paymentValidator

import (
	"coursehub/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Checkout validates the checkout request for a paid course
func Checkout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID      uint   `json:"courseId"`
			PaymentMethod string `json:"paymentMethod"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.PaymentMethod = strings.ToUpper(strings.TrimSpace(reqData.PaymentMethod))

		if reqData.CourseID == 0 {
			errors["courseId"] = "Course ID is required!"
		}

		if reqData.PaymentMethod != "" {
			validMethods := map[string]bool{"CARD": true, "UPI": true, "NETBANKING": true, "QR": true}
			if !validMethods[reqData.PaymentMethod] {
				errors["paymentMethod"] = "Payment method must be CARD, UPI, NETBANKING, or QR!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCheckout", reqData)
		return c.Next()
	}
}

// Confirm validates the payment confirmation request
func Confirm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		paymentIDStr := strings.TrimSpace(c.Params("id"))
		if paymentIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment ID is required!", nil)
		}

		paymentID, err := strconv.Atoi(paymentIDStr)
		if err != nil || paymentID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Payment ID!", nil)
		}

		reqData := new(struct {
			GatewayPaymentID string `json:"gatewayPaymentId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.GatewayPaymentID = strings.TrimSpace(reqData.GatewayPaymentID)
		if reqData.GatewayPaymentID == "" {
			errors["gatewayPaymentId"] = "Gateway payment id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("paymentID", paymentID)
		c.Locals("validatedConfirm", reqData)
		return c.Next()
	}
}

// History validates the payment history request
func History() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `query:"page"`
			Limit *int `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		c.Locals("validatedHistory", reqData)
		return c.Next()
	}
}
