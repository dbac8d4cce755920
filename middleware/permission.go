package middleware

import (
	"coursehub/database"
	"coursehub/models"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin loads the authenticated user and rejects non-admins. Handlers
// behind it can read the user from c.Locals("authUser").
func RequireAdmin(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	c.Locals("authUser", user)
	return c.Next()
}
