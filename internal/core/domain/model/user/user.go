package user

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// Roles known to the system. Role is free text in storage; only Manager
// carries special meaning at the HTTP boundary.
const (
	RoleManager  = "Manager"
	RoleOperator = "Operario"
)

const (
	maxUsernameLength = 50
	maxNameLength     = 100
	maxPhoneLength    = 30
)

// User is a warehouse operator account. The password never appears here in
// clear text; the aggregate only ever holds the bcrypt hash.
type User struct {
	id           kernel.OperatorID
	username     string
	passwordHash string
	firstName    string
	lastName     string
	phone        string
	role         string

	isConstructed bool
}

// NewUser creates an account with a pre-computed password hash. Role
// defaults to Operario when empty. The id stays zero until the repository
// inserts the row.
func NewUser(username, passwordHash, firstName, lastName, phone, role string) (*User, error) {
	if role == "" {
		role = RoleOperator
	}

	user := &User{
		passwordHash:  passwordHash,
		role:          role,
		isConstructed: true,
	}

	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}

	if err := errors.Join(
		user.setUsername(username),
		user.setNames(firstName, lastName),
		user.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser reconstructs an account from persistence.
func RestoreUser(
	id kernel.OperatorID,
	username, passwordHash, firstName, lastName, phone, role string,
) (*User, error) {
	user, err := NewUser(username, passwordHash, firstName, lastName, phone, role)
	if err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	user.id = id
	return user, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// AssignID records the database-assigned identity after insert.
func (u *User) AssignID(id kernel.OperatorID) error {
	if u.id != 0 {
		return errors.New("user id is already assigned")
	}
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

// ID returns the account identifier; zero until persisted.
func (u *User) ID() kernel.OperatorID {
	return u.id
}

// Username returns the login name.
func (u *User) Username() string {
	return u.username
}

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// FirstName returns the account's first name.
func (u *User) FirstName() string {
	return u.firstName
}

// LastName returns the account's last name.
func (u *User) LastName() string {
	return u.lastName
}

// Phone returns the contact phone, possibly empty.
func (u *User) Phone() string {
	return u.phone
}

// Role returns the account role.
func (u *User) Role() string {
	return u.role
}

// IsManager reports whether the account passes the Manager role gate.
func (u *User) IsManager() bool {
	return u.role == RoleManager
}

// DisplayName returns the name shown in workflow attribution, falling back
// to the username when the account has no first name.
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.firstName)
	if name == "" {
		return u.username
	}
	return name
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	if len(username) > maxUsernameLength {
		return errs.NewValueIsOutOfRangeError("username", len(username), 1, maxUsernameLength)
	}
	u.username = username
	return nil
}

func (u *User) setNames(firstName, lastName string) error {
	if len(firstName) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("firstName", len(firstName), 0, maxNameLength)
	}
	if len(lastName) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("lastName", len(lastName), 0, maxNameLength)
	}
	u.firstName = firstName
	u.lastName = lastName
	return nil
}

func (u *User) setPhone(phone string) error {
	if len(phone) > maxPhoneLength {
		return errs.NewValueIsOutOfRangeError("phone", len(phone), 0, maxPhoneLength)
	}
	u.phone = phone
	return nil
}
