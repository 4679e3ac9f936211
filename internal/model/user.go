package model

import "time"

// Role names stored in the users.role column and carried in the JWT
// "role" claim.  The set is closed; RequireRole middleware rejects
// anything else.
const (
    RoleCustomer = "CUSTOMER"
    RoleVendor   = "VENDOR"
    RoleAdmin    = "ADMIN"
)

// User represents an application user record as stored in the
// `users` table.  Each field corresponds to a column in the
// database.  The json tags are omitted because these structs are
// used internally by the repository layer; handlers define their
// own response types.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  Role         – role name (CUSTOMER, VENDOR or ADMIN).
//  IsActive     – whether the account is active.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
    ID           uint64    // users.id
    Email        string    // users.email
    PasswordHash string    // users.password_hash
    Role         string    // users.role
    IsActive     bool      // users.is_active
    CreatedAt    time.Time // users.created_at
    UpdatedAt    time.Time // users.updated_at
}
