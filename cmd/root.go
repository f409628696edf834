package cmd

import (
	"fmt"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nuts-foundation/nuts-contract-service/api"
	engine2 "github.com/nuts-foundation/nuts-contract-service/engine"
	pkg2 "github.com/nuts-foundation/nuts-contract-service/pkg"
	core "github.com/nuts-foundation/nuts-go-core"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const confPort = "port"
const confInterface = "interface"

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start contract-service as a standalone api server",
	Run: func(cmd *cobra.Command, args []string) {
		server := echo.New()
		server.HideBanner = true
		server.Use(middleware.Logger())
		api.RegisterHandlers(server, api.Wrapper{Cl: pkg2.ContractServiceInstance()})
		addr := fmt.Sprintf("%s:%d", serverInterface, serverPort)
		server.Logger.Fatal(server.Start(addr))
	},
}
var (
	serverInterface string
	serverPort      int
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	nutsConfig := core.NutsConfig()

	var contractServiceEngine = engine2.NewContractServiceEngine()

	var rootCommand = contractServiceEngine.Cmd
	serveCommand.Flags().StringVar(&serverInterface, confInterface, "localhost", "Server interface binding")
	serveCommand.Flags().IntVarP(&serverPort, confPort, "p", 1324, "Server listen port")
	rootCommand.AddCommand(serveCommand)

	nutsConfig.IgnoredPrefixes = append(nutsConfig.IgnoredPrefixes, contractServiceEngine.ConfigKey)
	nutsConfig.RegisterFlags(rootCommand, contractServiceEngine)

	if err := nutsConfig.Load(rootCommand); err != nil {
		panic(err)
	}

	nutsConfig.PrintConfig(logrus.StandardLogger())

	if err := nutsConfig.InjectIntoEngine(contractServiceEngine); err != nil {
		panic(err)
	}

	if err := contractServiceEngine.Configure(); err != nil {
		logrus.StandardLogger().WithError(err).Fatal("could not configure contract service")
	}

	if err := contractServiceEngine.Start(); err != nil {
		panic(err)
	}

	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
