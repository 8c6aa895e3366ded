package usecases

import (
	"errors"
	"testing"

	"ifcfg-agent/internal/domain/entities"
	domainErrors "ifcfg-agent/internal/domain/errors"
	"ifcfg-agent/internal/domain/services"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockInterfaceLocator is a testify mock for the InterfaceLocator port.
type MockInterfaceLocator struct {
	mock.Mock
}

func (m *MockInterfaceLocator) NameBySequence(index int) (string, error) {
	args := m.Called(index)
	return args.String(0), args.Error(1)
}

func (m *MockInterfaceLocator) NameByHardwareAddress(addr string) (string, error) {
	args := m.Called(addr)
	return args.String(0), args.Error(1)
}

// staticPaths is a PathResolver fixed to one directory.
type staticPaths struct {
	dir string
}

func (s staticPaths) ConfigDir() string {
	return s.dir
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)
	return logger
}

func newBuildUseCase(locator *MockInterfaceLocator) *BuildConfigurationUseCase {
	resolver := services.NewIdentityResolver(locator)
	normalizer := services.NewNormalizer(staticPaths{dir: "/etc/sysconfig/network-scripts"})
	return NewBuildConfigurationUseCase(resolver, normalizer, newTestLogger())
}

func TestBuildConfigurationUseCase_Execute_HardwareAddress(t *testing.T) {
	locator := new(MockInterfaceLocator)
	locator.On("NameByHardwareAddress", "aa:bb:cc:dd:ee:ff").Return("eth1", nil)

	uc := newBuildUseCase(locator)

	output, err := uc.Execute(BuildInput{
		Identifier: entities.HardwareAddressIdentifier("aa:bb:cc:dd:ee:ff"),
		Params: entities.InterfaceParams{
			State:        "up",
			IPAddress:    "10.0.0.5",
			Netmask:      "255.255.255.0",
			DNSSecondary: "8.8.8.8",
		},
	})
	require.NoError(t, err)

	cfg := output.Config
	assert.Equal(t, "eth1", cfg.Name)
	assert.Equal(t, "yes", cfg.BootFlag)
	assert.Equal(t, "8.8.8.8", cfg.DNSPrimary)
	assert.Empty(t, cfg.DNSSecondary)
	assert.False(t, cfg.IsAlias())
	assert.Equal(t, "/etc/sysconfig/network-scripts/ifcfg-eth1", output.FilePath)
	locator.AssertExpectations(t)
}

func TestBuildConfigurationUseCase_Execute_UnresolvableHardwareAddress(t *testing.T) {
	locator := new(MockInterfaceLocator)
	locator.On("NameByHardwareAddress", "de:ad:be:ef:00:01").
		Return("", errors.New("no link with hardware address de:ad:be:ef:00:01"))

	uc := newBuildUseCase(locator)

	output, err := uc.Execute(BuildInput{
		Identifier: entities.HardwareAddressIdentifier("de:ad:be:ef:00:01"),
		Params:     entities.InterfaceParams{State: "up"},
	})

	require.Error(t, err)
	assert.True(t, domainErrors.IsResolutionError(err))
	assert.Nil(t, output)
}

func TestBuildConfigurationUseCase_Execute_ValidationFailureProducesNoRecord(t *testing.T) {
	locator := new(MockInterfaceLocator)
	uc := newBuildUseCase(locator)

	output, err := uc.Execute(BuildInput{
		Identifier: entities.NameIdentifier("eth0"),
		Params:     entities.InterfaceParams{State: "sideways"},
	})

	require.Error(t, err)
	assert.True(t, domainErrors.IsValidationError(err))
	assert.Nil(t, output)
}

func TestBuildConfigurationUseCase_Execute_SequencePosition(t *testing.T) {
	locator := new(MockInterfaceLocator)
	locator.On("NameBySequence", 1).Return("eth1", nil)

	uc := newBuildUseCase(locator)

	output, err := uc.Execute(BuildInput{
		Identifier: entities.SequenceIdentifier(1),
		Params:     entities.InterfaceParams{State: "down"},
	})
	require.NoError(t, err)
	assert.Equal(t, "eth1", output.Config.Name)
	assert.Equal(t, "no", output.Config.BootFlag)
}
