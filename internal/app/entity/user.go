package entity

const (
	DefaultUsername = "Guest User"
	DefaultAvatar   = "/default-avatar.png"
)

type UserID string

func (id UserID) String() string {
	return string(id)
}

func (id UserID) Valid() bool {
	return len(id) != 0
}

type UserSummary struct {
	ID       UserID
	Username string
	Email    string
	Avatar   string
}

func (u UserSummary) DisplayName() string {
	if len(u.Username) == 0 {
		return DefaultUsername
	}

	return u.Username
}

func (u UserSummary) DisplayAvatar() string {
	if len(u.Avatar) == 0 {
		return DefaultAvatar
	}

	return u.Avatar
}

type UserOrders struct {
	User   UserSummary
	Orders Orders
}

type Credentials struct {
	Email    string
	Password string
}

type Account struct {
	User  UserSummary
	Token string
}

// SignupForm mirrors the account signup form.
type SignupForm struct {
	FullName string `form:"Fullname" validate:"required"`
	Username string `form:"username" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type PasswordReset struct {
	Token       string
	NewPassword string
}

type Profile struct {
	ID       UserID
	FullName string
	Username string
	Email    string
	Avatar   string
}

// IsZero reports whether the profile carries nothing but an id.
func (p Profile) IsZero() bool {
	return len(p.FullName) == 0 &&
		len(p.Username) == 0 &&
		len(p.Email) == 0 &&
		len(p.Avatar) == 0
}

// ProfilePatch is a partial profile. Nil fields are left untouched by the backend.
type ProfilePatch struct {
	FullName *string `form:"Fullname"`
	Username *string `form:"username"`
	Email    *string `form:"email" validate:"omitempty,email"`
	Password *string `form:"password"`
	Avatar   *string `form:"userImage"`
}

func (p ProfilePatch) Empty() bool {
	return p.FullName == nil &&
		p.Username == nil &&
		p.Email == nil &&
		p.Password == nil &&
		p.Avatar == nil
}
