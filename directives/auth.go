package directives

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/mmdatafocus/warehouse_backend/config"
	"github.com/mmdatafocus/warehouse_backend/models"
	"github.com/mmdatafocus/warehouse_backend/utils"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"gorm.io/gorm"
)

// retrieve user from redis or db
func getUser(username string, ctx context.Context) (*models.User, error) {
	var user models.User
	exists, err := config.GetRedisObject("User:"+username, &user)
	if err != nil {
		return nil, err
	}

	if !exists {

		db := config.GetDB()
		if err := db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Take(&user).Error; err != nil {
			return nil, err
		}

		token_lifespan, err := strconv.Atoi(os.Getenv("TOKEN_HOUR_LIFESPAN"))
		if err != nil {
			return nil, err
		}

		if err := config.SetRedisObject("User:"+user.Username, &user, time.Duration(token_lifespan)*time.Hour); err != nil {
			return nil, err
		}
	}
	return &user, nil
}

// worker accounts only operate the warehouse floor: worksheet execution
// and the lookups that feed it
var workerPaths = map[string]bool{
	"worksheet":                true,
	"paginateWorksheet":        true,
	"activatePickingWorksheet": true,
	"completePickingWorksheet": true,
	"activateLoadingWorksheet": true,
	"completeLoadingWorksheet": true,
	"inventory":                true,
	"inventoryByPalletId":      true,
	"logout":                   true,
	"me":                       true,
}

// admin accounts manage domains and accounts, never warehouse documents
var adminPaths = map[string]bool{
	"domain":       true,
	"domains":      true,
	"createDomain": true,
	"updateDomain": true,
	"users":        true,
	"createUser":   true,
	"updateUser":   true,
	"deleteUser":   true,
	"logout":       true,
	"me":           true,
}

func Auth(ctx context.Context, obj interface{}, next graphql.Resolver) (interface{}, error) {

	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok || username == "" {
		return nil, &gqlerror.Error{
			Message: "Access Denied",
		}
	}

	user, err := getUser(username, ctx)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// destroy current session if user has been deleted
			models.Logout(ctx)
		}
		return nil, &gqlerror.Error{
			Message: err.Error(),
		}
	}
	if !*user.IsActive {
		return nil, &gqlerror.Error{
			Message: "User is disabled",
		}
	}

	gqlpath := rootField(graphql.GetPath(ctx).String())

	switch user.Role {
	case models.UserRoleAdmin:
		if !adminPaths[gqlpath] {
			return nil, &gqlerror.Error{
				Message: "Unauthorized",
			}
		}
	case models.UserRoleWorker:
		if !workerPaths[gqlpath] {
			return nil, &gqlerror.Error{
				Message: "Unauthorized",
			}
		}
	}

	ctx = utils.SetDomainIdInContext(ctx, user.DomainId)
	ctx = utils.SetUserIdInContext(ctx, user.ID)
	ctx = utils.SetUserNameInContext(ctx, user.Name)
	ctx = utils.SetIsAdminInContext(ctx, user.Role == models.UserRoleAdmin)

	return next(ctx)
}

func rootField(gqlpath string) string {
	if i := strings.IndexByte(gqlpath, '.'); i >= 0 {
		return gqlpath[:i]
	}
	return gqlpath
}
