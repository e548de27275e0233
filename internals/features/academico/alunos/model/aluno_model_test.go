package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }
func str(s string) *string   { return &s }

func TestNormalizarTransicao_FrequenciaAbaixoDoMinimo(t *testing.T) {
	a := AlunoModel{
		AlunoNome:                  "Domingos Van-Dúnem",
		AlunoPercentagemFrequencia: f64(60.0),
		AlunoMatriculaCondicional:  true,
	}

	a.NormalizarTransicao()

	assert.False(t, a.AlunoMatriculaCondicional, "frequência insuficiente anula a condicional")
	require.NotNil(t, a.AlunoMotivoRetencao)
	assert.Contains(t, *a.AlunoMotivoRetencao, "60,00%")
	assert.Contains(t, *a.AlunoMotivoRetencao, "66,67%")
	require.NotNil(t, a.AlunoObservacaoTransicao, "a observação é sintetizada junto com o motivo")
	assert.Contains(t, *a.AlunoObservacaoTransicao, "60,00%")
}

func TestNormalizarTransicao_MotivoExplicitoNaoSobrescrito(t *testing.T) {
	a := AlunoModel{
		AlunoPercentagemFrequencia: f64(50.0),
		AlunoMatriculaCondicional:  true,
		AlunoMotivoRetencao:        str("Retenção decidida pelo conselho de turma"),
	}

	a.NormalizarTransicao()

	assert.False(t, a.AlunoMatriculaCondicional)
	assert.Equal(t, "Retenção decidida pelo conselho de turma", *a.AlunoMotivoRetencao)
	assert.Nil(t, a.AlunoObservacaoTransicao, "sem síntese, não há observação derivada")
}

func TestNormalizarTransicao_MotivoExplicitoIdempotente(t *testing.T) {
	a := AlunoModel{
		AlunoPercentagemFrequencia: f64(50.0),
		AlunoMotivoRetencao:        str("Retenção decidida pelo conselho de turma"),
	}

	a.NormalizarTransicao()
	a.NormalizarTransicao()

	assert.Equal(t, "Retenção decidida pelo conselho de turma", *a.AlunoMotivoRetencao)
	assert.Nil(t, a.AlunoObservacaoTransicao)
}

func TestNormalizarTransicao_CondicionalSemExameAssumeExtraordinario(t *testing.T) {
	a := AlunoModel{
		AlunoPercentagemFrequencia: f64(80.0),
		AlunoMatriculaCondicional:  true,
	}

	a.NormalizarTransicao()

	assert.True(t, a.AlunoMatriculaCondicional)
	require.NotNil(t, a.AlunoTipoExame)
	assert.Equal(t, TipoExameExtraordinario, *a.AlunoTipoExame)
	assert.Nil(t, a.AlunoMotivoRetencao)
}

func TestNormalizarTransicao_ExameExplicitoNaoSobrescrito(t *testing.T) {
	a := AlunoModel{
		AlunoPercentagemFrequencia: f64(70.0),
		AlunoMatriculaCondicional:  true,
		AlunoTipoExame:             str(TipoExameRecurso),
	}

	a.NormalizarTransicao()

	assert.Equal(t, TipoExameRecurso, *a.AlunoTipoExame)
}

func TestNormalizarTransicao_LimiarExactoNaoRetem(t *testing.T) {
	a := AlunoModel{
		AlunoPercentagemFrequencia: f64(FrequenciaMinima),
		AlunoMatriculaCondicional:  true,
	}

	a.NormalizarTransicao()

	assert.True(t, a.AlunoMatriculaCondicional, "66,67%% exactos não ficam abaixo do mínimo")
	assert.Nil(t, a.AlunoMotivoRetencao)
}

func TestNormalizarTransicao_SemFrequenciaNaoMexe(t *testing.T) {
	a := AlunoModel{AlunoMatriculaCondicional: false}

	a.NormalizarTransicao()

	assert.False(t, a.AlunoMatriculaCondicional)
	assert.Nil(t, a.AlunoTipoExame)
	assert.Nil(t, a.AlunoMotivoRetencao)
}

func TestNormalizarTransicao_Idempotente(t *testing.T) {
	a := AlunoModel{
		AlunoPercentagemFrequencia: f64(45.5),
		AlunoMatriculaCondicional:  true,
	}

	a.NormalizarTransicao()
	primeiro := *a.AlunoMotivoRetencao
	obs := *a.AlunoObservacaoTransicao
	condicional := a.AlunoMatriculaCondicional

	a.NormalizarTransicao()

	assert.Equal(t, primeiro, *a.AlunoMotivoRetencao)
	assert.Equal(t, obs, *a.AlunoObservacaoTransicao)
	assert.Equal(t, condicional, a.AlunoMatriculaCondicional)
	assert.Contains(t, primeiro, "45,50%")
}
