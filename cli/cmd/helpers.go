package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idstack/idstack-cli/action"
	"github.com/idstack/idstack-cli/config"
	idctx "github.com/idstack/idstack-cli/context"
	gatewayhttp "github.com/idstack/idstack-cli/internal/providers/server/http"
	"github.com/idstack/idstack-cli/secrets"
)

type handledError struct {
	msg string
}

func (handledError) handledMarker() {}

func (e handledError) Error() string {
	return e.msg
}

type handled interface {
	handledMarker()
}

func IsHandledError(err error) bool {
	if err == nil {
		return false
	}
	var h handled
	return errors.As(err, &h)
}

func usageError(cmd *cobra.Command, message string) error {
	msg := strings.TrimSpace(message)
	if msg == "" {
		msg = "invalid command usage"
	}

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())

	return handledError{msg: msg}
}

func successf(cmd *cobra.Command, format string, args ...any) {
	if noStatusOutput {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "[OK] "+format+"\n", args...)
}

func infof(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}

func printJSON(cmd *cobra.Command, value any) error {
	rendered, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(rendered))
	return nil
}

// dispatcherFactory builds the action dispatcher for resource commands. Tests
// swap it for a factory backed by an in-memory collection provider.
var dispatcherFactory = loadDispatcher

func loadDispatcher(cmd *cobra.Command) (*action.Dispatcher, error) {
	gateway, _, err := loadGateway(cmd)
	if err != nil {
		return nil, err
	}
	return action.NewDispatcher(gateway, newPrompterFor(cmd)), nil
}

// loadGateway assembles the remote API gateway from the stored profile, the
// process environment, and (when configured) the encrypted key store.
func loadGateway(cmd *cobra.Command) (*gatewayhttp.Gateway, *config.Profile, error) {
	manager := &idctx.ProfileManager{}
	profile, err := idctx.LoadProfileWithEnv(manager)
	if err != nil {
		return nil, nil, err
	}

	keyID, keySecret, err := resolveCredentials(cmd, profile)
	if err != nil {
		return nil, nil, err
	}

	gateway, err := gatewayhttp.NewGateway(gatewayhttp.Config{
		BaseURL:      profile.EffectiveBaseURL(),
		APIKeyID:     keyID,
		APIKeySecret: keySecret,
		Scope:        profile.Context,
	})
	if err != nil {
		return nil, nil, err
	}
	return gateway, profile, nil
}

func resolveCredentials(cmd *cobra.Command, profile *config.Profile) (string, string, error) {
	if profile.Credentials.Inline() {
		return profile.Credentials.APIKeyID, profile.Credentials.APIKeySecret, nil
	}
	if !profile.Credentials.Encrypted() {
		return "", "", errors.New("no api key configured; run `idstack setup`")
	}

	prompt := newPrompterFor(cmd)
	passphrase, err := prompt.AskSecret("Key store passphrase")
	if err != nil {
		return "", "", err
	}
	store := &secrets.FileKeyStore{Path: profile.Credentials.KeyStorePath}
	key, err := store.Load([]byte(passphrase))
	if errors.Is(err, secrets.ErrKeyStoreNotFound) {
		return "", "", fmt.Errorf("%w at %s (run `idstack setup` again)", err, profile.Credentials.KeyStorePath)
	}
	if err != nil {
		return "", "", err
	}
	return key.ID, key.Secret, nil
}
