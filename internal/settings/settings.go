// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package settings owns the store configuration document.

Sistema.Versao doubles as the schema version read by the startup guard in the
seed package.
*/
package settings

import "github.com/taibuivan/lookeasy/internal/platform/constants"

// Empresa holds the public contact details of the store.
type Empresa struct {
	Nome     string `json:"nome" yaml:"nome"`
	Email    string `json:"email" yaml:"email"`
	Telefone string `json:"telefone" yaml:"telefone"`
	Endereco string `json:"endereco" yaml:"endereco"`
}

// Sistema holds operational switches.
type Sistema struct {
	Versao         string `json:"versao" yaml:"versao"`
	ModoManutencao bool   `json:"modoManutencao" yaml:"modoManutencao"`

	// EstoqueMinimo is the low-stock threshold of the admin report.
	EstoqueMinimo int `json:"estoqueMinimo" yaml:"estoqueMinimo"`
}

// Settings is the whole document.
type Settings struct {
	Empresa Empresa `json:"empresa" yaml:"empresa"`
	Sistema Sistema `json:"sistema" yaml:"sistema"`
}

// Defaults returns the factory settings stamped with the running version.
func Defaults() Settings {
	return Settings{
		Empresa: Empresa{
			Nome:     "LookEasy",
			Email:    "contato@lookeasy.com",
			Telefone: "(11) 9999-9999",
			Endereco: "São Paulo, SP",
		},
		Sistema: Sistema{
			Versao:         constants.DBVersion,
			ModoManutencao: false,
			EstoqueMinimo:  5,
		},
	}
}

// Patch is a partial update. Nil fields are left unchanged.
// The version is not patchable, it belongs to the startup guard.
type Patch struct {
	Nome           *string
	Email          *string
	Telefone       *string
	Endereco       *string
	ModoManutencao *bool
	EstoqueMinimo  *int
}
