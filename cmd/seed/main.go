// Seed generates a sample customer spreadsheet for local development, with
// the accented headers the production export uses.
package main

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"
)

var sampleCustomers = [][]interface{}{
	{"Nome", "Instalação", "Medidor", "Latitude", "Longitude", "Região"},
	{"João Silva", "100200", "M-001", "-23.550520", "-46.633308", "Sudeste"},
	{"Maria da Conceição", "100300", "M-002", "-22.906847", "-43.172897", "Sudeste"},
	{"José dos Santos", "100400", "M-003", "-19.916681", "-43.934493", "Sudeste"},
	{"Ana da Rua Nova", "200400", "M-004", "-12.977749", "-38.501630", "Nordeste"},
	{"António Gonçalves", "200500", "M-005", "-3.731862", "-38.526670", "Nordeste"},
	{"Maria Silva", "300600", "M-006", "-30.034647", "-51.217658", "Sul"},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	path := os.Getenv("EXCEL_FILE")
	if path == "" {
		path = "DADOS_CLIENTES - INSTALAÇÃO E COORDENADAS.xlsx"
	}
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	color.Cyan("🚀 Seeding sample customer spreadsheet\n")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range sampleCustomers {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				color.Red("Failed: %v", err)
				os.Exit(1)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				color.Red("Failed: %v", err)
				os.Exit(1)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		color.Red("Failed to save %s: %v", path, err)
		os.Exit(1)
	}

	color.Green("Created %s (%d customers)", path, len(sampleCustomers)-1)
}
