// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

// # Field Identifiers

// Field names reported in validation details.
const (
	FieldNome           = "nome"
	FieldEmail          = "email"
	FieldSenha          = "senha"
	FieldConfirmarSenha = "confirmarSenha"
	FieldTermos         = "termos"
	FieldToken          = "token"
	FieldRole           = "role"
)

// # Messages

const (
	MsgNomeCurto        = "Nome deve ter pelo menos 3 caracteres"
	MsgSenhaCurta       = "Senha deve ter pelo menos 6 caracteres"
	MsgSenhaLonga       = "Senha deve ter no máximo 72 bytes"
	MsgSenhaObrigatoria = "Senha é obrigatória"
	MsgSenhasDiferentes = "Senhas não coincidem"
	MsgTermos           = "Aceite os termos de uso"
	MsgTokenObrigatorio = "Token é obrigatório"
	MsgRoleInvalido     = "Perfil deve ser admin ou cliente"

	// MsgResetRequested is returned for every well-formed reset request,
	// whether or not the email belongs to an account.
	MsgResetRequested = "Se o email estiver cadastrado, você receberá instruções"
	MsgResetDone      = "Senha redefinida com sucesso"
)

// # Validation Limits

const (
	MinNomeLength  = 3
	MinSenhaLength = 6

	// MaxSenhaBytes is the longest input bcrypt accepts.
	MaxSenhaBytes = 72
)
