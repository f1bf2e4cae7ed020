package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nguyentantai21042004/meeting-scribe/internal/audio"
	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
	"github.com/nguyentantai21042004/meeting-scribe/internal/pipeline"
)

var inputExtensions = map[string]bool{
	".m4a": true, ".wav": true, ".mp3": true, ".aac": true, ".ogg": true, ".flac": true,
}

// discoverAudioFiles lists the input directory's audio files in name order.
// Filenames containing spaces are renamed up front so every later artifact
// path is shell-friendly.
func discoverAudioFiles(inputDir string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if !inputExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}

		path := filepath.Join(inputDir, e.Name())
		if strings.Contains(e.Name(), " ") {
			renamed := filepath.Join(inputDir, strings.ReplaceAll(e.Name(), " ", "_"))
			if err := os.Rename(path, renamed); err != nil {
				return nil, fmt.Errorf("rename %s: %w", path, err)
			}
			path = renamed
		}
		files = append(files, path)
	}

	sort.Strings(files)
	return files, nil
}

// resolveJobs produces one fully-resolved Job per file before any pipeline
// stage runs.
func resolveJobs(ctx context.Context, files []string, converter *audio.Converter, promptTemplate string, interactive bool) ([]pipeline.Job, error) {
	jobs := make([]pipeline.Job, 0, len(files))
	for _, f := range files {
		job, err := resolveJob(ctx, f, converter, promptTemplate, interactive)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func resolveJob(ctx context.Context, filePath string, converter *audio.Converter, promptTemplate string, interactive bool) (pipeline.Job, error) {
	defaultDate := converter.RecordingDate(ctx, filePath)
	defaultName := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))

	job := pipeline.Job{
		AudioPath:      filePath,
		RecordingDate:  defaultDate,
		RecordingName:  defaultName,
		PromptTemplate: promptTemplate,
	}

	if !interactive {
		return job, nil
	}

	date, name, err := promptRecordingDetails(defaultDate, defaultName, filePath)
	if err != nil {
		return pipeline.Job{}, err
	}
	job.RecordingDate = date
	job.RecordingName = name
	return job, nil
}

func promptRecordingDetails(defaultDate, defaultName, filePath string) (string, string, error) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Printf("Provide a custom recording date and meeting name for %s? (y/n): ", filepath.Base(filePath))
	answer, err := reader.ReadString('\n')
	if err != nil {
		return "", "", err
	}
	if strings.ToLower(strings.TrimSpace(answer)) != "y" {
		return defaultDate, defaultName, nil
	}

	fmt.Print("Enter the recording date (YYYY-MM-DD): ")
	dateInput, err := reader.ReadString('\n')
	if err != nil {
		return "", "", err
	}
	date := strings.TrimSpace(dateInput)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	fmt.Print("Enter the name for the recording: ")
	nameInput, err := reader.ReadString('\n')
	if err != nil {
		return "", "", err
	}
	name := strings.TrimSpace(nameInput)
	if name == "" {
		name = defaultName
	}

	return date, name, nil
}

// resolvePromptTemplate loads the summary prompt. In interactive mode the
// user picks one of the templates in the prompts directory.
func resolvePromptTemplate(cfg *config.Config, interactive bool) (string, error) {
	promptFile := cfg.Summary.PromptFile

	if interactive {
		selected, err := selectPrompt(cfg.Paths.Prompts)
		if err != nil {
			return "", err
		}
		if selected != "" {
			promptFile = selected
		}
	}

	data, err := os.ReadFile(promptFile)
	if err != nil {
		return "", fmt.Errorf("read prompt template: %w", err)
	}
	return string(data), nil
}

func selectPrompt(promptsDir string) (string, error) {
	entries, err := os.ReadDir(promptsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}

	var prompts []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".txt") {
			prompts = append(prompts, filepath.Join(promptsDir, e.Name()))
		}
	}
	if len(prompts) == 0 {
		return "", nil
	}
	sort.Strings(prompts)

	fmt.Println("Which prompt would you like to use for this run?")
	for i, p := range prompts {
		fmt.Printf("%d) %s\n", i+1, filepath.Base(p))
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("Enter the number of the prompt: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", err
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 1 || choice > len(prompts) {
			fmt.Println("Invalid selection. Please try again.")
			continue
		}
		return prompts[choice-1], nil
	}
}
