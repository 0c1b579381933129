package handlers

import (
	"errors"
	"net/http"

	"restaurant-api/config"
	"restaurant-api/domain"
	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/policy"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GetProfile returns the authenticated user's profile
func GetProfile(c *gin.Context) {
	p := middleware.Principal(c)
	if err := policy.Check(p, policy.UserReadSelf, nil); err != nil {
		fail(c, err)
		return
	}
	var user models.User
	if err := config.DB.First(&user, p.ID).Error; err != nil {
		fail(c, domain.NotFound("user not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type UpdateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

// UpdateProfile updates the authenticated user's username, email, or
// password. Role is immutable after creation; no endpoint changes it.
func UpdateProfile(c *gin.Context) {
	p := middleware.Principal(c)
	if err := policy.Check(p, policy.UserUpdateSelf, nil); err != nil {
		fail(c, err)
		return
	}

	var user models.User
	if err := config.DB.First(&user, p.ID).Error; err != nil {
		fail(c, domain.NotFound("user not found"))
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user.PasswordHash = string(hash)
	}

	if err := config.DB.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			fail(c, domain.Conflict("username or email already exists"))
			return
		}
		fail(c, domain.Internal("failed to update user", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "user": user})
}

// ListUsers returns all users — owner only
func ListUsers(c *gin.Context) {
	if err := policy.Check(middleware.Principal(c), policy.UserList, nil); err != nil {
		fail(c, err)
		return
	}
	var users []models.User
	if err := config.DB.Find(&users).Error; err != nil {
		fail(c, domain.Internal("failed to list users", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// GetUser returns a user by ID — owner only
func GetUser(c *gin.Context) {
	if err := policy.Check(middleware.Principal(c), policy.UserRead, nil); err != nil {
		fail(c, err)
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		fail(c, domain.NotFound("user not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteUser removes a user — owner only
func DeleteUser(c *gin.Context) {
	if err := policy.Check(middleware.Principal(c), policy.UserDelete, nil); err != nil {
		fail(c, err)
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		fail(c, domain.NotFound("user not found"))
		return
	}
	if err := config.DB.Delete(&user).Error; err != nil {
		fail(c, domain.Internal("failed to delete user", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
