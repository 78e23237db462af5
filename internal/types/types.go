// internal/types/types.go
package types

// EntityID — непрозрачный уникальный идентификатор башни, врага или снаряда.
type EntityID string

// None is the zero EntityID, used for "nothing selected".
const None EntityID = ""
