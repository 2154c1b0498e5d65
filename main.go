package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"groza/config"
	"groza/display"
	"groza/providers"
)

var configPath string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groza",
		Short: "Погода в терминале",
		Long:  "Показывает текущую погоду из OpenWeatherMap: иконка, температура, ветер, восход и закат. Всё поведение задаётся файлом конфигурации.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			run()
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "путь к файлу конфигурации")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	var provider providers.Provider = providers.NewOpenWeatherProvider(cfg.APIKey)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	snapshot, err := provider.GetWeather(ctx, cfg.City, cfg.Units)
	if err != nil {
		log.Fatalf("Ошибка получения погоды: %v", err)
	}

	fmt.Println(display.Render(snapshot, cfg, time.Now().UTC()))
}
