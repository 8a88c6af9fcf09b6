package tgi

import (
	"fmt"
	"strconv"

	"ritual/internal/provider"

	"github.com/kelseyhightower/envconfig"
)

// scriptSecrets are the environment-provided values plugged into the startup
// script. All but the Hugging Face key are required.
type scriptSecrets struct {
	DBHost               string `envconfig:"DB_HOST"`
	DBPort               string `envconfig:"DB_PORT"`
	DBUser               string `envconfig:"DB_USER"`
	DBPass               string `envconfig:"DB_PASS"`
	DBName               string `envconfig:"DB_NAME"`
	DockerhubUser        string `envconfig:"DOCKERHUB_USER"`
	DockerhubTgiImageTag string `envconfig:"DOCKERHUB_TGI_IMAGE_TAG"`
	HfAPIKey             string `envconfig:"HF_API_KEY"`
}

// ScriptParams parameterize one startup script.
type ScriptParams struct {
	MachineType string
	NumShard    int
	RunConfig   provider.RunConfig
}

const scriptTemplate = ` yes | (sudo apt update);
# For non-MLiaB-os
sudo docker --version &> /dev/null && echo "Docker is installed" || ( sudo curl -fsSL https://get.docker.com -o get-docker.sh && sudo sh get-docker.sh )

# Pull image from Dockerhub on first boot
if sudo docker image inspect %[1]s &> /dev/null; then echo "Docker image %[1]s exists."; else (sudo docker pull %[1]s) > build_log.txt 2>&1; fi

# Start existing docker container, or run image
CONTAINER_ID=$(sudo docker ps -a -q --filter "ancestor=%[1]s" --latest)
if [ -z "$CONTAINER_ID" ]; then sudo docker run --gpus all --shm-size 1g -p 8080:80 -v /data:/data -e CLUSTER_ID=$(hostname) -e DB_URL=%[2]s -e DB_PORT=%[3]s -e DB_USER=%[4]s -e DB_PASS=%[5]s -e DB_NAME=%[6]s %[7]s %[1]s --num-shard %[8]s %[9]s; else sudo docker start $CONTAINER_ID; fi`

// FormatScript renders the TGI launch script with environment secrets
// plugged in. It fails with a validation error before any remote call is
// made when a required secret is absent.
func FormatScript(params ScriptParams) (string, error) {
	const op = "tgi.FormatScript"

	var sec scriptSecrets
	if err := envconfig.Process("", &sec); err != nil {
		return "", provider.NewError(provider.KindValidation, op, "Required env variables missing for startup script.", err)
	}
	if sec.DBHost == "" || sec.DBPort == "" || sec.DBUser == "" || sec.DBPass == "" ||
		sec.DBName == "" || sec.DockerhubUser == "" || sec.DockerhubTgiImageTag == "" {
		return "", provider.NewError(provider.KindValidation, op, "Required env variables missing for startup script.", nil)
	}

	hfAPIFlag := ""
	if sec.HfAPIKey != "" {
		hfAPIFlag = fmt.Sprintf("-e HUGGING_FACE_HUB_TOKEN=%s", sec.HfAPIKey)
	}
	imageName := fmt.Sprintf("%s/%s", sec.DockerhubUser, sec.DockerhubTgiImageTag)

	return fmt.Sprintf(scriptTemplate,
		imageName,
		sec.DBHost,
		sec.DBPort,
		sec.DBUser,
		sec.DBPass,
		sec.DBName,
		hfAPIFlag,
		strconv.Itoa(params.NumShard),
		FormatRunConfigFlags(params.RunConfig),
	), nil
}
