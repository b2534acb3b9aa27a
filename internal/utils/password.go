package utils

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// alfabetoSenha exclui caracteres ambíguos (l, I, O, 0, 1) porque a senha
// temporária chega ao lojista por email e é digitada à mão.
const alfabetoSenha = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const tamanhoSenhaTemporaria = 12

// HashSenha gera o hash bcrypt guardado no cadastro do lojista.
func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	return string(hash), err
}

// VerificarSenha confere a senha informada no login contra o hash do cadastro.
func VerificarSenha(hash, senha string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha))
	return err == nil
}

// GerarSenhaTemporaria sorteia a senha provisória enviada no email de
// boas-vindas do lojista.
func GerarSenhaTemporaria() (string, error) {
	senha := make([]byte, tamanhoSenhaTemporaria)
	for i := range senha {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alfabetoSenha))))
		if err != nil {
			return "", err
		}
		senha[i] = alfabetoSenha[n.Int64()]
	}
	return string(senha), nil
}
