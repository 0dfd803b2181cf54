package dto

type CreateAccountRequestDTO struct {
	Name   string `validate:"required,max=64"`
	Secret string `validate:"required,max=256"`
	Kind   string `validate:"required"`
}

type LoginRequestDTO struct {
	Number string `validate:"required,alphanum,max=32"`
	Secret string `validate:"required"`
}
