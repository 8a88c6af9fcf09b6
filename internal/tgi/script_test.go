package tgi

import (
	"testing"

	"ritual/internal/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setScriptSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "ritual")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_NAME", "ritual")
	t.Setenv("DOCKERHUB_USER", "ritualhub")
	t.Setenv("DOCKERHUB_TGI_IMAGE_TAG", "tgi:1.1.0")
	t.Setenv("HF_API_KEY", "")
}

func TestFormatScript(t *testing.T) {
	setScriptSecrets(t)

	script, err := FormatScript(ScriptParams{
		MachineType: "A100x2",
		NumShard:    2,
		RunConfig:   provider.RunConfig{"model_id": "tiiuae/falcon-7b", "quantize": "bitsandbytes"},
	})

	require.NoError(t, err)
	assert.Contains(t, script, "sudo docker pull ritualhub/tgi:1.1.0")
	assert.Contains(t, script, "-e DB_URL=db.internal")
	assert.Contains(t, script, "-e DB_PORT=5432")
	assert.Contains(t, script, "--num-shard 2")
	assert.Contains(t, script, "--model-id tiiuae/falcon-7b --quantize bitsandbytes")
	assert.NotContains(t, script, "HUGGING_FACE_HUB_TOKEN")
}

func TestFormatScriptHuggingFaceToken(t *testing.T) {
	setScriptSecrets(t)
	t.Setenv("HF_API_KEY", "hf_token")

	script, err := FormatScript(ScriptParams{NumShard: 1, RunConfig: provider.RunConfig{"model_id": "m"}})

	require.NoError(t, err)
	assert.Contains(t, script, "-e HUGGING_FACE_HUB_TOKEN=hf_token")
}

func TestFormatScriptMissingSecrets(t *testing.T) {
	setScriptSecrets(t)
	t.Setenv("DB_PASS", "")

	_, err := FormatScript(ScriptParams{NumShard: 1, RunConfig: provider.RunConfig{"model_id": "m"}})

	assert.True(t, provider.IsKind(err, provider.KindValidation))
	assert.ErrorContains(t, err, "Required env variables missing for startup script.")
}
