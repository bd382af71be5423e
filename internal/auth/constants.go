package auth

const (
	ContextKeyPersonalKey = "personal_key"
	ContextKeyRoleID      = "role_id"
	ContextKeyUnitID      = "unit_id"
	ContextKeyUser        = "auth_user"

	headerAuthorization = "Authorization"

	bearerScheme    = "bearer"
	authHeaderParts = 2

	jsonKeyMessage = "message"
)

// User-facing rejection messages. Several distinct internal causes share
// MsgAuthFailed on purpose: the caller must not be able to tell a
// malformed token from an unknown or disabled account.
const (
	MsgNoToken          = "Nenhum token fornecido!"
	MsgTokenExpired     = "Token expirado!"
	MsgAuthFailed       = "Falha na autenticação!"
	MsgNoActiveSession  = "Token não está associado a uma sessão ativa!"
	MsgPermissionDenied = "Permissão negada!"
)

const (
	msgUnexpectedSigningMethod = "unexpected signing method: %v"
	msgTokenParseFailed        = "failed to parse token: %w"
	msgInvalidTokenClaims      = "invalid token claims"
	msgUserNotAuthenticated    = "user not authenticated"
	msgInvalidPersonalKeyCtx   = "invalid personal key in context"
)
