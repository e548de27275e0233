// file: internals/helpers/auth/locals.go
package helper

// Chaves padronizadas de fiber Locals preenchidas pelo middleware de auth.
// O resto do código NUNCA lê claims do token directamente — apenas estas keys.
const (
	LocUserID    = "user_id"
	LocUserName  = "user_name"
	LocRoleCache = "role_cache"
)
