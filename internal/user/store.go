package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ArthurDelaporte/MiniTweet-Back/internal/apperr"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/database"
)

// Create insère un nouvel utilisateur et garantit l'unicité du username
// et de l'email. La pré-vérification donne une erreur lisible ; l'index
// unique en base reste l'arbitre final en cas de course.
func Create(username, displayName, email, passwordHash string) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" {
		return nil, apperr.Wrap(apperr.ErrValidation, "username et email requis")
	}

	if ExistsByUsername(username) {
		return nil, apperr.Wrap(apperr.ErrConflict, "nom d'utilisateur déjà utilisé")
	}
	if ExistsByEmail(email) {
		return nil, apperr.Wrap(apperr.ErrConflict, "email déjà utilisé")
	}

	newUser := User{
		ID:           uuid.New().String(),
		CreatedAt:    time.Now(),
		Username:     username,
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
	}

	if err := database.DB.Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Wrap(apperr.ErrConflict, "username ou email déjà utilisé")
		}
		return nil, apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	return &newUser, nil
}

func FindByID(id string) (*User, error) {
	var u User
	if err := database.DB.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Wrap(apperr.ErrNotFound, "utilisateur introuvable")
		}
		return nil, apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	return &u, nil
}

func FindByUsername(username string) (*User, error) {
	var u User
	if err := database.DB.First(&u, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Wrap(apperr.ErrNotFound, "utilisateur introuvable")
		}
		return nil, apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	return &u, nil
}

// UpdateInput : seuls les champs non vides sont appliqués.
type UpdateInput struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Bio         string `json:"bio"`
}

// Update applique une mise à jour partielle du profil. L'unicité est
// revérifiée pour un username ou un email modifié avant le commit ;
// tous les champs changés sont appliqués ensemble ou pas du tout.
func Update(id string, input UpdateInput) (*User, error) {
	u, err := FindByID(id)
	if err != nil {
		return nil, err
	}

	if len(input.Bio) > MaxBioLength {
		return nil, apperr.Wrapf(apperr.ErrValidation, "bio limitée à %d caractères", MaxBioLength)
	}

	if input.Username != "" && input.Username != u.Username {
		if ExistsByUsername(input.Username) {
			return nil, apperr.Wrap(apperr.ErrConflict, "nom d'utilisateur déjà utilisé")
		}
		u.Username = input.Username
	}
	if input.Email != "" && input.Email != u.Email {
		if ExistsByEmail(input.Email) {
			return nil, apperr.Wrap(apperr.ErrConflict, "email déjà utilisé")
		}
		u.Email = input.Email
	}
	if input.DisplayName != "" {
		u.DisplayName = input.DisplayName
	}
	if input.Bio != "" {
		u.Bio = input.Bio
	}

	if err := database.DB.Save(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Wrap(apperr.ErrConflict, "username ou email déjà utilisé")
		}
		return nil, apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	return u, nil
}

// Search retourne au plus limit utilisateurs dont le username ou le nom
// affiché contient le terme recherché.
func Search(query string, limit int) ([]User, error) {
	var users []User
	if err := database.DB.
		Where("username ILIKE ? OR display_name ILIKE ?", "%"+query+"%", "%"+query+"%").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	return users, nil
}
