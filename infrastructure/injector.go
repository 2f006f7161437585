package infrastructure

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/sfputil/internal/constants"
	"github.com/Fivegen-LLC/sfputil/internal/domains/platform"
	"github.com/Fivegen-LLC/sfputil/internal/domains/porttab"
	"github.com/Fivegen-LLC/sfputil/internal/domains/sfp"
	"github.com/Fivegen-LLC/sfputil/internal/environment"
	"github.com/Fivegen-LLC/sfputil/internal/errs"
)

type IInjector interface {
	InjectSfpHandler() *sfp.Handler
}

type Kernel struct {
	env environment.Environment

	SfpUtil *platform.SfpUtil
}

// Inject loads the platform descriptor and the port table, in that order, so that
// startup failures map to their own exit codes.
func Inject(env environment.Environment) (k *Kernel, err error) {
	k = &Kernel{
		env: env,
	}

	descriptorPath := filepath.Join(env.PlatformDir(), constants.PluginsDir, constants.PluginDescriptor)
	descriptor, err := platform.LoadDescriptor(descriptorPath)
	if err != nil {
		return k, fmt.Errorf("Inject: %w: %w", errs.ErrPlatformLoad, err)
	}

	table, err := porttab.Load(env.PortPrefix, portConfigPaths(env.Platform)...)
	if err != nil {
		return k, fmt.Errorf("Inject: %w", err)
	}

	if k.SfpUtil, err = platform.New(descriptor, table); err != nil {
		return k, fmt.Errorf("Inject: %w", err)
	}

	log.Debug().
		Str("platform", k.SfpUtil.Name()).
		Int("ports", len(table.Logical())).
		Msg("Inject: kernel ready")

	return k, nil
}

// portConfigPaths returns one port table per ASIC on multi-ASIC platforms.
func portConfigPaths(p environment.Platform) []string {
	if !p.IsMultiASIC() {
		return []string{p.PortConfigPath}
	}

	paths := make([]string, 0, p.NumASICs)
	for asic := range p.NumASICs {
		paths = append(paths, filepath.Join(p.HwSKUDir(), strconv.Itoa(asic), constants.PortConfigFileName))
	}

	return paths
}

func (k *Kernel) InjectSfpHandler() *sfp.Handler {
	return sfp.NewHandler(
		k.InjectSfpService(),
		k.env.IfaceDataExclude,
		k.env.DOMDataExclude,
	)
}
